package wire

import "github.com/quicch/quicch/internal/protocol"

// A PingFrame is a PING frame
type PingFrame struct{}

// Append appends the frame to b.
func (f *PingFrame) Append(b []byte) ([]byte, error) {
	return append(b, byte(PingFrameType)), nil
}

// Length of a written frame
func (f *PingFrame) Length() protocol.ByteCount {
	return 1
}
