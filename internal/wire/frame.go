// Package wire contains the frame types exchanged between the channel and its
// transmission and receive paths. Only the frames the connection control plane
// originates or consumes are modelled here; stream data framing lives in the
// packetization layer.
package wire

import "github.com/quicch/quicch/internal/protocol"

// A Frame in QUIC
type Frame interface {
	Append(b []byte) ([]byte, error)
	Length() protocol.ByteCount
}

// A FrameType is the type of a QUIC frame.
type FrameType uint64

// The constants need to match the ones from RFC 9000.
// This allows us to easily convert a FrameType into the corresponding byte.
const (
	PingFrameType             FrameType = 0x1
	ResetStreamFrameType      FrameType = 0x4
	StopSendingFrameType      FrameType = 0x5
	NewConnectionIDFrameType  FrameType = 0x18
	ConnectionCloseFrameType  FrameType = 0x1c
	ApplicationCloseFrameType FrameType = 0x1d
	HandshakeDoneFrameType    FrameType = 0x1e
)
