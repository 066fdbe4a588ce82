package quicch

import (
	"time"

	"github.com/quicch/quicch/internal/utils"
)

type channelTimer struct {
	timer *utils.Timer
}

func newChannelTimer() *channelTimer {
	return &channelTimer{timer: utils.NewTimer()}
}

func (t *channelTimer) SetRead() {
	t.timer.SetRead()
}

func (t *channelTimer) Chan() <-chan time.Time {
	return t.timer.Chan()
}

func (t *channelTimer) Deadline() time.Time {
	return t.timer.Deadline()
}

// SetTimer resets the timer to the earliest of the given deadlines.
// A zero deadline means the corresponding event is not scheduled.
func (t *channelTimer) SetTimer(idleDeadline, terminateDeadline, keepAlive, probe time.Time) {
	deadline := idleDeadline
	if !terminateDeadline.IsZero() && (deadline.IsZero() || terminateDeadline.Before(deadline)) {
		deadline = terminateDeadline
	}
	if !keepAlive.IsZero() && (deadline.IsZero() || keepAlive.Before(deadline)) {
		deadline = keepAlive
	}
	if !probe.IsZero() && (deadline.IsZero() || probe.Before(deadline)) {
		deadline = probe
	}
	t.timer.Reset(deadline)
}

func (t *channelTimer) Stop() {
	t.timer.Stop()
}
