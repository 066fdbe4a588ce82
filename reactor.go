package quicch

import (
	"errors"
	"time"
)

// errChannelNotActive is returned by operations that are only valid on an
// active channel.
var errChannelNotActive = errors.New("channel not active")

// The Reactor is the ticking surface of a channel. The channel itself never
// blocks and owns no goroutine; instead it computes its next wake deadline —
// the idle timeout and the closing/draining expiry — and an external
// scheduler ticks the channel no earlier than that deadline, either by
// polling NextTickDeadline or by waiting on the armed wakeup timer.
type Reactor struct {
	ch    *Channel
	timer *channelTimer
}

func newReactor(ch *Channel) *Reactor {
	return &Reactor{ch: ch, timer: newChannelTimer()}
}

// NextTickDeadline returns the next point in time at which the channel needs
// to be ticked. A zero time means no tick is currently required: the channel
// is idle, fully terminated, or ticking is inhibited.
func (r *Reactor) NextTickDeadline(g Guard) time.Time {
	ch := r.ch
	ch.verify(g)
	if ch.inhibitTick {
		return time.Time{}
	}
	switch ch.state {
	case stateIdle, stateTerminated:
		return time.Time{}
	case stateActive:
		return ch.idleDeadline
	case stateClosing, stateDraining:
		return ch.terminateDeadline
	default:
		panic("invalid channel state")
	}
}

// Arm recomputes the next tick deadline and resets the wakeup timer to it.
func (r *Reactor) Arm(g Guard) {
	ch := r.ch
	ch.verify(g)
	if ch.inhibitTick {
		r.timer.SetTimer(time.Time{}, time.Time{}, time.Time{}, time.Time{})
		return
	}
	r.timer.SetTimer(ch.idleDeadline, ch.terminateDeadline, time.Time{}, time.Time{})
}

// C returns the wakeup timer's channel. The scheduler must call TimerRead
// after receiving from it.
//
// This method is safe to call without prior locking.
func (r *Reactor) C() <-chan time.Time {
	return r.timer.Chan()
}

// TimerRead tells the reactor that the value from the wakeup timer's channel
// was consumed.
func (r *Reactor) TimerRead() {
	r.timer.SetRead()
}

// Tick ticks the channel. Equivalent to Channel.Tick followed by re-arming
// the wakeup timer.
func (r *Reactor) Tick(g Guard, now time.Time) {
	r.ch.Tick(g, now)
	r.Arm(g)
}

// Stop stops the wakeup timer.
func (r *Reactor) Stop() {
	r.timer.Stop()
}
