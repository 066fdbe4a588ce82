package quicch

import (
	"context"
	"net"

	"github.com/quicch/quicch/internal/protocol"
	"github.com/quicch/quicch/internal/wire"
)

// A Handshaker drives the cryptographic handshake for a channel.
// It is supplied at construction time and owned by the channel for teardown
// purposes; its internal cryptographic state is opaque to the channel.
type Handshaker interface {
	// StartHandshake begins the handshake flow appropriate to the endpoint's
	// role: a client sends its first flight, a server starts waiting for one.
	StartHandshake(context.Context) error
	Close() error
}

// A Sender is the transmission path of a connection. The channel never
// performs I/O itself; it signals the sender, which packetizes and transmits
// asynchronously.
type Sender interface {
	// QueuePing queues an ack-eliciting PING frame for transmission.
	QueuePing()
	// HasPending says if any data is currently queued for transmission.
	HasPending() bool
	// SendConnectionClose hands the sender a CONNECTION_CLOSE frame to emit.
	SendConnectionClose(*wire.ConnectionCloseFrame)
	// RollTxKeys tells the sender to protect future 1-RTT packets with the
	// keys of the given phase, derived from the given traffic secret.
	RollTxKeys(phase protocol.KeyPhase, nextTrafficSecret []byte)
	// SetSourceConnID atomically updates the source connection ID used for
	// outgoing packets.
	SetSourceConnID(protocol.ConnectionID)
}

// A ReadTransport is the receive half of the network path, typically a
// non-blocking UDP socket wrapper. It is caller-managed: the channel holds a
// reference but does not close it at teardown.
type ReadTransport interface {
	ReceiveDatagram(b []byte) (n int, addr net.Addr, err error)
	Close() error
}

// A WriteTransport is the send half of the network path.
// Like the ReadTransport, it is caller-managed.
type WriteTransport interface {
	SendDatagram(b []byte, addr net.Addr) (n int, err error)
	Close() error
}

// A PacketMutator is a test hook invoked by the transmission path before a
// packet leaves the process. It may return a modified copy of the packet.
// Returning false leaves the packet untouched.
type PacketMutator func(b []byte) ([]byte, bool)

// A FinishMutationFunc is called after the mutated packet has been handed to
// the network, so the mutator can release any resources backing the copy.
type FinishMutationFunc func()

// A MsgCallback is a wire-trace hook observing packets as they are sent and
// received. The data slice is only valid for the duration of the call.
type MsgCallback func(sent bool, data []byte)
