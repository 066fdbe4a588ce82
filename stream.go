package quicch

import "github.com/quicch/quicch/internal/protocol"

// A Stream is the control-plane view of a stream registered in the stream
// map. The channel enforces identifier legality at creation and applies the
// incoming-stream rejection policy; the stream's buffers and flow control
// live in the data plane and are not modelled here.
//
// All methods require the channel mutex to be held.
type Stream struct {
	id protocol.StreamID

	reset     bool
	resetCode uint64

	stopSending     bool
	stopSendingCode uint64
}

// StreamID returns the stream's identifier. The low two bits encode the
// initiating role and the directionality.
func (s *Stream) StreamID() protocol.StreamID { return s.id }

// Reset marks the stream's sending part as reset with the given application
// error code, as if a RESET_STREAM frame had been issued.
func (s *Stream) Reset(errorCode uint64) {
	if s.reset {
		return
	}
	s.reset = true
	s.resetCode = errorCode
}

// StopSending marks the stream's receiving part as rejected with the given
// application error code, as if a STOP_SENDING frame had been issued.
func (s *Stream) StopSending(errorCode uint64) {
	if s.stopSending {
		return
	}
	s.stopSending = true
	s.stopSendingCode = errorCode
}

// ResetCode returns the error code the sending part was reset with.
func (s *Stream) ResetCode() (uint64, bool) {
	return s.resetCode, s.reset
}

// StopSendingCode returns the error code the receiving part was rejected with.
func (s *Stream) StopSendingCode() (uint64, bool) {
	return s.stopSendingCode, s.stopSending
}

// IsRejected says if both halves of the stream have been rejected.
func (s *Stream) IsRejected() bool {
	return s.reset && s.stopSending
}
