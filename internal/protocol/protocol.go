// Package protocol contains the basic types and constants of the QUIC protocol.
package protocol

import (
	"fmt"
	"time"
)

// A PacketNumber in QUIC
type PacketNumber int64

// InvalidPacketNumber is a packet number that is never sent.
// In our tests, it is used to initialize packet number fields.
const InvalidPacketNumber PacketNumber = -1

// A ByteCount in QUIC
type ByteCount int64

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<62 - 1)

// An ApplicationErrorCode is an application-defined error code.
type ApplicationErrorCode uint64

// MaxStreamCount is the maximum stream count value that can be sent in MAX_STREAMS frames
// and as the stream count in the transport parameters
const MaxStreamCount = 1 << 60

// A StreamNum is the stream number
type StreamNum int64

const (
	// InvalidStreamNum is an invalid stream number.
	InvalidStreamNum = -1
	// MaxStreamNum is the maximum stream number
	MaxStreamNum = StreamNum(MaxStreamCount)
)

// StreamID returns the stream ID.
func (s StreamNum) StreamID(stype StreamType, pers Perspective) StreamID {
	if s == 0 {
		return InvalidStreamID
	}
	var first StreamID
	switch stype {
	case StreamTypeBidi:
		switch pers {
		case PerspectiveClient:
			first = 0
		case PerspectiveServer:
			first = 1
		}
	case StreamTypeUni:
		switch pers {
		case PerspectiveClient:
			first = 2
		case PerspectiveServer:
			first = 3
		}
	}
	return first + 4*StreamID(s-1)
}

// A StreamType is the type of the stream (unidirectional or bidirectional).
type StreamType uint8

const (
	// StreamTypeUni is a unidirectional stream
	StreamTypeUni StreamType = iota
	// StreamTypeBidi is a bidirectional stream
	StreamTypeBidi
)

func (t StreamType) String() string {
	switch t {
	case StreamTypeUni:
		return "uni"
	case StreamTypeBidi:
		return "bidi"
	default:
		return fmt.Sprintf("unknown stream type: %d", t)
	}
}

// MinConnectionIDLenInitial is the minimum length of the destination connection ID on an Initial packet.
const MinConnectionIDLenInitial = 8

// TimerGranularity is the granularity of loss detection timers.
const TimerGranularity = time.Millisecond

// DefaultMaxIdleTimeout is the default idle timeout used when the application
// doesn't configure one.
const DefaultMaxIdleTimeout = 30 * time.Second

// KeyUpdateInterval is the maximum number of packets we send or receive before initiating a key update.
const KeyUpdateInterval = 100_000
