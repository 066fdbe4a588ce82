// Package qlog serializes connection events into the qlog format,
// using the JSON Text Sequences encoding.
package qlog

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/quicch/quicch/internal/protocol"
	"github.com/quicch/quicch/logging"

	"github.com/francoispqt/gojay"
)

// Setting of this only works when quicch is used as a library.
// When building a binary from this repository, the version can be set using the following go build flag:
// -ldflags="-X github.com/quicch/quicch/qlog.quicchVersion=foobar"
var quicchVersion = "(devel)"

const recordSeparator = 0x1e

func writeRecordSeparator(w io.Writer) error {
	_, err := w.Write([]byte{recordSeparator})
	return err
}

type connectionTracer struct {
	mutex sync.Mutex

	w             io.WriteCloser
	odcid         protocol.ConnectionID
	perspective   protocol.Perspective
	referenceTime time.Time

	encodeErr error
}

// NewConnectionTracer creates a new tracer that records events for a single connection.
func NewConnectionTracer(w io.WriteCloser, p protocol.Perspective, odcid protocol.ConnectionID) *logging.ConnectionTracer {
	t := &connectionTracer{
		w:             w,
		perspective:   p,
		odcid:         odcid,
		referenceTime: time.Now(),
	}
	t.recordTraceHeader()
	return &logging.ConnectionTracer{
		StartedConnection: func(local, remote net.Addr, srcConnID, destConnID protocol.ConnectionID) {
			t.StartedConnection(local, remote, srcConnID, destConnID)
		},
		UpdatedConnectionState: func(state logging.ConnectionState) {
			t.UpdatedConnectionState(state)
		},
		ClosedConnection: func(e error) {
			t.ClosedConnection(e)
		},
		ConfirmedHandshake: func() {
			t.ConfirmedHandshake()
		},
		UpdatedKey: func(generation logging.KeyPhase, remote bool) {
			t.UpdatedKey(generation, remote)
		},
		Close: func() {
			t.Close()
		},
	}
}

func (t *connectionTracer) recordTraceHeader() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if err := writeRecordSeparator(t.w); err != nil {
		t.encodeErr = err
		return
	}
	enc := gojay.NewEncoder(t.w)
	if err := enc.Encode(&topLevel{trace: trace{
		VantagePoint: vantagePoint{Type: t.perspective},
		CommonFields: commonFields{
			ODCID:         t.odcid,
			GroupID:       t.odcid,
			ReferenceTime: t.referenceTime,
		},
	}}); err != nil {
		t.encodeErr = err
		return
	}
	if _, err := t.w.Write([]byte{'\n'}); err != nil {
		t.encodeErr = err
	}
}

func (t *connectionTracer) recordEvent(eventTime time.Time, details eventDetails) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.encodeErr != nil {
		return
	}
	if err := writeRecordSeparator(t.w); err != nil {
		t.encodeErr = err
		return
	}
	enc := gojay.NewEncoder(t.w)
	if err := enc.Encode(event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}); err != nil {
		t.encodeErr = err
		return
	}
	if _, err := t.w.Write([]byte{'\n'}); err != nil {
		t.encodeErr = err
	}
}

func (t *connectionTracer) Close() {
	if t.encodeErr != nil {
		fmt.Fprintf(t.w, "error encoding qlog event: %s\n", t.encodeErr.Error())
	}
	t.w.Close()
}

func (t *connectionTracer) StartedConnection(local, remote net.Addr, srcConnID, destConnID protocol.ConnectionID) {
	// ignore this event if we're not dealing with UDP addresses
	localAddr, _ := local.(*net.UDPAddr)
	remoteAddr, _ := remote.(*net.UDPAddr)
	t.recordEvent(time.Now(), &eventConnectionStarted{
		SrcAddr:          localAddr,
		DestAddr:         remoteAddr,
		SrcConnectionID:  srcConnID,
		DestConnectionID: destConnID,
	})
}

func (t *connectionTracer) UpdatedConnectionState(state logging.ConnectionState) {
	t.recordEvent(time.Now(), &eventConnectionStateUpdated{state: state})
}

func (t *connectionTracer) ClosedConnection(e error) {
	t.recordEvent(time.Now(), &eventConnectionClosed{e: e})
}

func (t *connectionTracer) ConfirmedHandshake() {
	t.recordEvent(time.Now(), eventHandshakeConfirmed{})
}

func (t *connectionTracer) UpdatedKey(generation logging.KeyPhase, remote bool) {
	t.recordEvent(time.Now(), &eventKeyUpdated{
		Generation: generation,
		Remote:     remote,
	})
}
