package quicch

import (
	"github.com/quicch/quicch/internal/protocol"
	"github.com/quicch/quicch/internal/qerr"
	"github.com/quicch/quicch/internal/wire"
)

// TerminateOrigin says which endpoint caused the connection to terminate.
type TerminateOrigin uint8

const (
	// OriginNone means no termination cause has been recorded yet.
	OriginNone TerminateOrigin = iota
	// OriginLocal means we decided to terminate and sent (or owed) a
	// CONNECTION_CLOSE frame, regardless of whether the peer later also sent one.
	OriginLocal
	// OriginRemote means the termination cause is a received CONNECTION_CLOSE frame.
	OriginRemote
)

func (o TerminateOrigin) String() string {
	switch o {
	case OriginNone:
		return "none"
	case OriginLocal:
		return "local"
	case OriginRemote:
		return "remote"
	default:
		return "invalid origin"
	}
}

// ErrorSpace is the error code space of a termination cause.
type ErrorSpace uint8

const (
	// SpaceTransport is the QUIC transport error space.
	SpaceTransport ErrorSpace = iota
	// SpaceApplication is the application-defined error space.
	SpaceApplication
)

func (s ErrorSpace) String() string {
	if s == SpaceApplication {
		return "application"
	}
	return "transport"
}

// A TerminateCause is the cause of a connection's termination.
// It is recorded at most once per channel: the first termination event wins
// and later attempts to record one are ignored. It is only valid while the
// channel is in the closing, draining or terminated state.
type TerminateCause struct {
	Origin    TerminateOrigin
	Space     ErrorSpace
	ErrorCode uint64

	// FrameType is the type of the frame which caused the termination, if any.
	FrameType uint64

	// Reason is a best-effort diagnostic string. It is not guaranteed to be
	// delivered to the peer or retained beyond logging.
	Reason string
}

// IsSet says if a termination cause has been recorded.
func (c TerminateCause) IsSet() bool { return c.Origin != OriginNone }

// Err converts the cause into an error value suitable for reporting to the
// application layer.
func (c TerminateCause) Err() error {
	if !c.IsSet() {
		return nil
	}
	remote := c.Origin == OriginRemote
	if c.Space == SpaceApplication {
		return &qerr.ApplicationError{
			Remote:       remote,
			ErrorCode:    protocol.ApplicationErrorCode(c.ErrorCode),
			ErrorMessage: c.Reason,
		}
	}
	return &qerr.TransportError{
		Remote:       remote,
		FrameType:    c.FrameType,
		ErrorCode:    qerr.TransportErrorCode(c.ErrorCode),
		ErrorMessage: c.Reason,
	}
}

// frame builds the CONNECTION_CLOSE frame announcing this cause to the peer.
// Only locally originated causes owe the peer a close frame.
func (c TerminateCause) frame() *wire.ConnectionCloseFrame {
	return &wire.ConnectionCloseFrame{
		IsApplicationError: c.Space == SpaceApplication,
		ErrorCode:          c.ErrorCode,
		FrameType:          c.FrameType,
		ReasonPhrase:       c.Reason,
	}
}
