package quicch

import (
	"errors"
	"sync"
	"time"

	"github.com/quicch/quicch/internal/protocol"
	"github.com/quicch/quicch/internal/utils"
	"github.com/quicch/quicch/logging"
)

// ChannelConfig holds the arguments for constructing a Channel.
// The struct does not need to remain allocated after NewChannel returns.
type ChannelConfig struct {
	// Perspective is the role of this endpoint, client or server.
	Perspective protocol.Perspective

	// Handshaker drives the cryptographic handshake.
	// Ownership passes to the channel, which closes it at teardown.
	Handshaker Handshaker

	// Mutex is the channel mutex. It must outlive the channel: the
	// instantiator provides it so that instantiation and teardown can happen
	// in situations that already require locking, and so that blocking
	// semantics can be built above the channel by pairing it with a
	// condition variable.
	Mutex *sync.Mutex

	// Sender is the transmission path the channel signals.
	Sender Sender

	// LocalConnID is the connection ID under which the demultiplexer routes
	// incoming packets to this channel. If zero-length, one is generated.
	LocalConnID protocol.ConnectionID

	// MaxIncomingStreams and MaxIncomingUniStreams limit how many
	// bidirectional and unidirectional streams the peer may open.
	// Zero means the default of 100.
	MaxIncomingStreams    int64
	MaxIncomingUniStreams int64

	// MaxIdleTimeout is the duration of inactivity after which the
	// connection is terminated. Zero means the default of 30 seconds.
	MaxIdleTimeout time.Duration

	// Now is an optional override for retrieving the current time,
	// used by tests to run the tick timers against a fake clock.
	// The channel never frees it; the caller guarantees its validity for
	// the channel's lifetime. If nil, time.Now is used.
	Now func() time.Time

	// Tracer records connection events. Optional.
	Tracer *logging.ConnectionTracer

	// Logger is used for debug logging. If nil, the default logger is used.
	Logger utils.Logger
}

func (c *ChannelConfig) validate() error {
	if c.Perspective != protocol.PerspectiveClient && c.Perspective != protocol.PerspectiveServer {
		return errors.New("invalid perspective")
	}
	if c.Handshaker == nil {
		return errors.New("no handshaker")
	}
	if c.Mutex == nil {
		return errors.New("no channel mutex")
	}
	if c.Sender == nil {
		return errors.New("no sender")
	}
	if c.MaxIncomingStreams < 0 || c.MaxIncomingUniStreams < 0 {
		return errors.New("negative stream limit")
	}
	if int64(c.MaxIncomingStreams) > int64(protocol.MaxStreamCount) ||
		int64(c.MaxIncomingUniStreams) > int64(protocol.MaxStreamCount) {
		return errors.New("stream limit too large")
	}
	return nil
}

const defaultMaxIncomingStreams = 100

func (c *ChannelConfig) populateDefaults() {
	if c.MaxIncomingStreams == 0 {
		c.MaxIncomingStreams = defaultMaxIncomingStreams
	}
	if c.MaxIncomingUniStreams == 0 {
		c.MaxIncomingUniStreams = defaultMaxIncomingStreams
	}
	if c.MaxIdleTimeout == 0 {
		c.MaxIdleTimeout = protocol.DefaultMaxIdleTimeout
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Logger == nil {
		c.Logger = utils.DefaultLogger
	}
}
