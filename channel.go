// Package quicch implements the connection-level control plane of a QUIC
// transport: the object which binds together the various pieces of a QUIC
// connection into a single top-level entity, and handles connection state
// which is not specific to the client or server roles.
//
// A Channel is strictly separated from any application-facing API personality
// layer. Emulation of blocking semantics, partial-write modes and similar
// concerns are built above this layer, using the channel mutex together with
// a condition variable. The channel itself never blocks: network I/O is
// delegated to the transports, and every operation completes within its own
// critical section.
package quicch

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/quicch/quicch/internal/protocol"
	"github.com/quicch/quicch/internal/qerr"
	"github.com/quicch/quicch/internal/utils"
	"github.com/quicch/quicch/internal/wire"
	"github.com/quicch/quicch/logging"
)

// RTTStats is the statistics engine owned by a channel.
type RTTStats = utils.RTTStats

type channelState uint8

// The lifecycle states, in strict forward order. A channel never regresses
// to an earlier state.
const (
	stateIdle channelState = iota
	stateActive
	stateClosing
	stateDraining
	stateTerminated
)

func (s channelState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateActive:
		return "active"
	case stateClosing:
		return "closing"
	case stateDraining:
		return "draining"
	case stateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("unknown state: %d", uint8(s))
	}
}

func (s channelState) connectionState() logging.ConnectionState {
	switch s {
	case stateIdle:
		return logging.ConnectionStateIdle
	case stateActive:
		return logging.ConnectionStateActive
	case stateClosing:
		return logging.ConnectionStateClosing
	case stateDraining:
		return logging.ConnectionStateDraining
	case stateTerminated:
		return logging.ConnectionStateTerminated
	default:
		panic("invalid channel state")
	}
}

// A Channel is a single QUIC connection's control plane.
//
// Multiple goroutines may use a channel concurrently. All coordination
// happens via the single mutex supplied at construction: unless a method is
// explicitly documented otherwise, it takes a Guard parameter and therefore
// requires the mutex to be held. Methods without a Guard parameter acquire
// and release the mutex themselves.
type Channel struct {
	perspective protocol.Perspective

	// The channel mutex. Borrowed from the instantiator, never freed here.
	mutex *sync.Mutex
	nowFn func() time.Time

	handshaker Handshaker
	sender     Sender

	// Owned exclusively by the channel, released exactly once at teardown.
	streams  *StreamMap
	rttStats *utils.RTTStats
	demux    *Demux

	reactor *Reactor

	readTransport  ReadTransport
	writeTransport WriteTransport
	peerAddr       net.Addr

	localConnID protocol.ConnectionID
	// Peer-issued connection IDs by sequence number, from NEW_CONNECTION_ID.
	peerConnIDs map[uint64]protocol.ConnectionID

	state              channelState
	handshakeComplete  bool
	handshakeConfirmed bool

	keys *keyUpdateTracker

	terminateCause    TerminateCause
	terminateDeadline time.Time
	idleDeadline      time.Time
	maxIdleTimeout    time.Duration

	netErr   error
	lastErr  error
	savedErr error

	inhibitTick    bool
	mutator        PacketMutator
	finishMutation FinishMutationFunc
	msgCallback    MsgCallback

	tracer *logging.ConnectionTracer
	logger utils.Logger

	closeOnce sync.Once
}

// NewChannel creates a new channel using the given arguments.
// It returns an error if the arguments are invalid.
func NewChannel(conf ChannelConfig) (*Channel, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}
	conf.populateDefaults()

	localConnID := conf.LocalConnID
	if localConnID.Len() == 0 {
		var err error
		localConnID, err = protocol.GenerateConnectionIDForInitial()
		if err != nil {
			return nil, err
		}
	}

	ch := &Channel{
		perspective:    conf.Perspective,
		mutex:          conf.Mutex,
		nowFn:          conf.Now,
		handshaker:     conf.Handshaker,
		sender:         conf.Sender,
		rttStats:       &utils.RTTStats{},
		demux:          newDemux(),
		localConnID:    localConnID,
		peerConnIDs:    make(map[uint64]protocol.ConnectionID),
		maxIdleTimeout: conf.MaxIdleTimeout,
		tracer:         conf.Tracer,
		logger:         conf.Logger.WithPrefix(conf.Perspective.String()),
	}
	ch.streams = newStreamMap(
		conf.Perspective,
		protocol.StreamNum(conf.MaxIncomingStreams),
		protocol.StreamNum(conf.MaxIncomingUniStreams),
		ch.logger,
	)
	ch.keys = newKeyUpdateTracker(nil, conf.Sender.RollTxKeys, conf.Tracer, ch.logger)
	ch.reactor = newReactor(ch)
	ch.demux.Register(localConnID, ch)
	return ch, nil
}

// Start starts the channel: an idle channel transitions to active and begins
// the handshake flow appropriate to its role, with a client sending the first
// flight. Successive calls are ignored; Start never fails on a channel that
// is not idle.
func (ch *Channel) Start(g Guard) error {
	ch.verify(g)
	if ch.state != stateIdle {
		return nil
	}
	if err := ch.handshaker.StartHandshake(context.Background()); err != nil {
		return err
	}
	ch.state = stateActive
	ch.bumpIdleDeadline()
	if ch.tracer != nil {
		if ch.tracer.StartedConnection != nil {
			ch.tracer.StartedConnection(nil, ch.peerAddr, ch.localConnID, protocol.ConnectionID{})
		}
		if ch.tracer.UpdatedConnectionState != nil {
			ch.tracer.UpdatedConnectionState(logging.ConnectionStateActive)
		}
	}
	ch.logger.Debugf("Started channel, local connection ID %s", ch.localConnID)
	return nil
}

// OnHandshakeComplete is called when the handshake layer has finished.
func (ch *Channel) OnHandshakeComplete(g Guard) {
	ch.verify(g)
	ch.handshakeComplete = true
}

// OnHandshakeConfirmed is called when the handshake is confirmed, i.e. when
// a HANDSHAKE_DONE frame has been sent or received. It does not change the
// lifecycle state, but 1-RTT-only behavior, key updates included, requires it.
func (ch *Channel) OnHandshakeConfirmed(g Guard) {
	ch.verify(g)
	ch.handshakeComplete = true
	ch.handshakeConfirmed = true
	ch.keys.SetHandshakeConfirmed()
	if ch.tracer != nil && ch.tracer.ConfirmedHandshake != nil {
		ch.tracer.ConfirmedHandshake()
	}
}

// LocalClose starts a locally initiated connection shutdown with the given
// application error code. It is a no-op unless the channel is active.
func (ch *Channel) LocalClose(g Guard, applicationErrorCode uint64) {
	ch.verify(g)
	if ch.state != stateActive {
		return
	}
	if !ch.setTerminateCause(TerminateCause{
		Origin:    OriginLocal,
		Space:     SpaceApplication,
		ErrorCode: applicationErrorCode,
	}) {
		return
	}
	ch.startTerminating(stateClosing)
}

// OnRemoteConnClose is called by the receive path when a validated
// CONNECTION_CLOSE frame arrives. The channel enters the draining state: the
// peer has already abandoned the connection, so no close frame is owed back.
// A channel that was already closing keeps its recorded cause; the first
// error wins.
func (ch *Channel) OnRemoteConnClose(g Guard, f *wire.ConnectionCloseFrame) {
	ch.verify(g)
	switch ch.state {
	case stateActive:
	case stateClosing:
		// Confirmation that the peer saw our close (or closed on its own).
		// Stop retransmitting the close frame, keep the recorded cause.
		ch.state = stateDraining
		if ch.tracer != nil && ch.tracer.UpdatedConnectionState != nil {
			ch.tracer.UpdatedConnectionState(logging.ConnectionStateDraining)
		}
		return
	default:
		return
	}
	space := SpaceTransport
	if f.IsApplicationError {
		space = SpaceApplication
	}
	if !ch.setTerminateCause(TerminateCause{
		Origin:    OriginRemote,
		Space:     space,
		ErrorCode: f.ErrorCode,
		FrameType: f.FrameType,
		Reason:    f.ReasonPhrase,
	}) {
		return
	}
	ch.startTerminating(stateDraining)
}

// RaiseProtocolError raises a protocol error. This is the universal call for
// handling all peer-triggered protocol violations and violations detected by
// ourselves: it records a local, transport-scope termination cause and starts
// closing the connection. If a frame type is not applicable, pass zero.
// The reason string is a best-effort diagnostic; it is logged and offered to
// the peer in the close frame, but not guaranteed to be delivered or
// retained. If a termination cause already exists, this is a no-op; the first
// error wins.
func (ch *Channel) RaiseProtocolError(g Guard, errorCode qerr.TransportErrorCode, frameType uint64, reason string) {
	ch.verify(g)
	switch ch.state {
	case stateIdle, stateActive:
	default:
		return
	}
	if !ch.setTerminateCause(TerminateCause{
		Origin:    OriginLocal,
		Space:     SpaceTransport,
		ErrorCode: uint64(errorCode),
		FrameType: frameType,
		Reason:    reason,
	}) {
		return
	}
	ch.logger.Errorf("Protocol error: %s (frame type: %#x): %s", errorCode, frameType, reason)
	ch.startTerminating(stateClosing)
}

// OnNetError is called when a permanent network error is detected on one of
// the transports. Since no further packet exchange is possible, the channel
// terminates immediately, skipping the closing and draining states.
// Transient failures, timeouts in particular, are ignored.
func (ch *Channel) OnNetError(g Guard, err error) {
	ch.verify(g)
	if ch.state == stateTerminated || !isFatalNetError(err) {
		return
	}
	ch.netErr = err
	ch.setTerminateCause(TerminateCause{
		Origin:    OriginLocal,
		Space:     SpaceTransport,
		ErrorCode: uint64(qerr.InternalError),
		Reason:    err.Error(),
	})
	ch.logger.Errorf("Permanent net error: %s", err)
	ch.becomeTerminated()
}

// NetError reports whether a permanent net error was detected on the channel.
func (ch *Channel) NetError(g Guard) bool {
	ch.verify(g)
	return ch.netErr != nil
}

// setTerminateCause records the termination cause. The first writer wins:
// once recorded, the cause never changes for the lifetime of the channel.
func (ch *Channel) setTerminateCause(cause TerminateCause) bool {
	if ch.terminateCause.IsSet() {
		return false
	}
	ch.terminateCause = cause
	return true
}

// startTerminating moves an active (or, for draining, closing) channel into
// the given terminating state and arms the terminate timer.
//
// The closing/draining period lasts three times the current probe timeout,
// the RECOMMENDED duration from RFC 9000, section 10.2: long enough for a
// close frame and its retransmissions to reach the peer, short enough not to
// hold connection state hostage.
func (ch *Channel) startTerminating(next channelState) {
	now := ch.nowFn()
	ch.terminateDeadline = now.Add(3 * ch.rttStats.PTO(true))
	ch.state = next
	ch.lastErr = ch.terminateCause.Err()
	if next == stateClosing {
		ch.sender.SendConnectionClose(ch.terminateCause.frame())
	}
	if ch.tracer != nil && ch.tracer.UpdatedConnectionState != nil {
		ch.tracer.UpdatedConnectionState(next.connectionState())
	}
	ch.logger.Debugf("Terminating (%s): %s", next, ch.terminateCause.Err())
}

func (ch *Channel) becomeTerminated() {
	if ch.state == stateTerminated {
		return
	}
	ch.state = stateTerminated
	ch.terminateDeadline = time.Time{}
	ch.idleDeadline = time.Time{}
	ch.lastErr = ch.terminateCause.Err()
	if ch.netErr != nil {
		ch.lastErr = ch.netErr
	}
	ch.saveErrState()
	if ch.tracer != nil {
		if ch.tracer.UpdatedConnectionState != nil {
			ch.tracer.UpdatedConnectionState(logging.ConnectionStateTerminated)
		}
		if ch.tracer.ClosedConnection != nil {
			ch.tracer.ClosedConnection(ch.lastErr)
		}
	}
	ch.logger.Debugf("Terminated: %s", ch.lastErr)
}

// Tick drives the channel's deadline-based behavior. An external scheduler
// calls it no earlier than the deadline reported by the reactor. Ticking is
// suppressed entirely while inhibit-tick is set.
func (ch *Channel) Tick(g Guard, now time.Time) {
	ch.verify(g)
	if ch.inhibitTick {
		return
	}
	switch ch.state {
	case stateIdle, stateTerminated:
	case stateActive:
		if !ch.idleDeadline.IsZero() && !now.Before(ch.idleDeadline) {
			// The idle timer expired. The peer is assumed to have abandoned
			// its state already, so the connection terminates silently
			// without a closing exchange.
			ch.setTerminateCause(TerminateCause{
				Origin:    OriginLocal,
				Space:     SpaceTransport,
				ErrorCode: uint64(qerr.NoError),
				Reason:    "idle timeout",
			})
			ch.lastErr = &qerr.IdleTimeoutError{}
			ch.becomeTerminatedIdle()
		}
	case stateClosing, stateDraining:
		if !now.Before(ch.terminateDeadline) {
			ch.becomeTerminated()
		}
	}
}

// becomeTerminatedIdle is the idle-timeout variant of becomeTerminated: the
// reported error is the idle timeout, not the recorded transport cause.
func (ch *Channel) becomeTerminatedIdle() {
	ch.state = stateTerminated
	ch.terminateDeadline = time.Time{}
	ch.idleDeadline = time.Time{}
	ch.saveErrState()
	if ch.tracer != nil {
		if ch.tracer.UpdatedConnectionState != nil {
			ch.tracer.UpdatedConnectionState(logging.ConnectionStateTerminated)
		}
		if ch.tracer.ClosedConnection != nil {
			ch.tracer.ClosedConnection(ch.lastErr)
		}
	}
	ch.logger.Debugf("Terminated: %s", ch.lastErr)
}

func (ch *Channel) bumpIdleDeadline() {
	ch.idleDeadline = ch.nowFn().Add(ch.maxIdleTimeout)
}

// OnPacketSent is called by the transmission path for every 1-RTT packet
// sent. It feeds the key-update tracker and refreshes the idle deadline.
func (ch *Channel) OnPacketSent(g Guard, pn protocol.PacketNumber) {
	ch.verify(g)
	if ch.state != stateActive {
		return
	}
	ch.keys.OnPacketSent(pn)
	ch.bumpIdleDeadline()
}

// OnPacketAcked is called by the ack processing path with the highest newly
// acknowledged 1-RTT packet number.
func (ch *Channel) OnPacketAcked(g Guard, pn protocol.PacketNumber) {
	ch.verify(g)
	ch.keys.OnPacketAcked(pn)
}

// OnPacketReceived is called by the receive path for every processed packet.
// It refreshes the idle deadline.
func (ch *Channel) OnPacketReceived(g Guard) {
	ch.verify(g)
	if ch.state == stateActive {
		ch.bumpIdleDeadline()
	}
}

// OnRXKeyUpdateDetected is called by the receive path when it unprotects the
// first packet of the peer's next key phase.
func (ch *Channel) OnRXKeyUpdateDetected(g Guard) {
	ch.verify(g)
	ch.keys.OnRXKeyUpdateDetected()
}

// SetTxTrafficSecret is called by the handshake layer when the 1-RTT send
// keys are installed. Next-generation key update secrets are derived from it.
func (ch *Channel) SetTxTrafficSecret(g Guard, secret []byte) {
	ch.verify(g)
	ch.keys.SetTrafficSecret(secret)
}

// OnNewConnID is called by the receive path when a NEW_CONNECTION_ID frame
// arrives. A frame retiring connection IDs beyond its own sequence number is
// invalid; the error is reported to the caller for escalation.
func (ch *Channel) OnNewConnID(g Guard, f *wire.NewConnectionIDFrame) error {
	ch.verify(g)
	if f.RetirePriorTo > f.SequenceNumber {
		return fmt.Errorf("retire_prior_to (%d) larger than sequence_number (%d)", f.RetirePriorTo, f.SequenceNumber)
	}
	for seq := range ch.peerConnIDs {
		if seq < f.RetirePriorTo {
			delete(ch.peerConnIDs, seq)
		}
	}
	ch.peerConnIDs[f.SequenceNumber] = f.ConnectionID
	return nil
}

// Queries. All of them require the channel mutex: the channel makes no
// guarantees about lock-free reads.

// IsActive says if the channel is active, i.e. started and not yet
// terminating or terminated.
func (ch *Channel) IsActive(g Guard) bool {
	ch.verify(g)
	return ch.state == stateActive
}

// IsTermAny says if the channel is terminating or terminated.
func (ch *Channel) IsTermAny(g Guard) bool {
	ch.verify(g)
	switch ch.state {
	case stateClosing, stateDraining, stateTerminated:
		return true
	default:
		return false
	}
}

// IsTerminated says if the channel has fully terminated.
func (ch *Channel) IsTerminated(g Guard) bool {
	ch.verify(g)
	return ch.state == stateTerminated
}

// IsHandshakeComplete says if the handshake layer has finished.
func (ch *Channel) IsHandshakeComplete(g Guard) bool {
	ch.verify(g)
	return ch.handshakeComplete
}

// IsHandshakeConfirmed says if the handshake has been confirmed.
func (ch *Channel) IsHandshakeConfirmed(g Guard) bool {
	ch.verify(g)
	return ch.handshakeConfirmed
}

// TerminateCause returns the recorded termination cause. The cause is only
// valid, and ok only true, while the channel is terminating or terminated.
func (ch *Channel) TerminateCause(g Guard) (TerminateCause, bool) {
	ch.verify(g)
	return ch.terminateCause, ch.terminateCause.IsSet()
}

// Stream admission.

// NewStreamLocal creates a new locally initiated stream in the stream map,
// choosing an appropriate stream ID. Exhaustion of the identifier space or of
// the configured stream limit is reported to the caller; it is not a protocol
// error.
func (ch *Channel) NewStreamLocal(g Guard, isUni bool) (*Stream, error) {
	ch.verify(g)
	if ch.state != stateActive {
		return nil, errChannelNotActive
	}
	stype := protocol.StreamTypeBidi
	if isUni {
		stype = protocol.StreamTypeUni
	}
	return ch.streams.OpenLocal(stype)
}

// NewStreamRemote creates a new remotely initiated stream in the stream map
// and adds it to the acceptance queue. The stream ID is used to confirm the
// initiator and determine the stream type. An invalid identifier is reported
// as an error; it is the caller's cue to raise a protocol error separately.
func (ch *Channel) NewStreamRemote(g Guard, id protocol.StreamID) (*Stream, error) {
	ch.verify(g)
	if ch.state != stateActive {
		return nil, errChannelNotActive
	}
	return ch.streams.AcceptRemote(id)
}

// StreamByID returns an existing stream by stream ID, or nil if the stream
// does not exist.
func (ch *Channel) StreamByID(g Guard, id protocol.StreamID) *Stream {
	ch.verify(g)
	return ch.streams.Get(id)
}

// SetIncomingStreamAutoReject configures incoming stream auto-rejection.
// While enabled, incoming streams have both their sending and receiving parts
// automatically rejected using the given application error code, as though
// STOP_SENDING and RESET_STREAM had been issued.
func (ch *Channel) SetIncomingStreamAutoReject(g Guard, enable bool, applicationErrorCode uint64) {
	ch.verify(g)
	ch.streams.SetAutoReject(enable, applicationErrorCode)
}

// RejectStream rejects the sending and receiving parts of a stream, as
// though it had been auto-rejected. Useful for a stream that was accepted
// before the auto-reject policy was enabled, or after inspection.
func (ch *Channel) RejectStream(g Guard, s *Stream) {
	ch.verify(g)
	ch.streams.Reject(s)
}

// Key rotation.

// TxKeyEpoch returns the current 1-RTT send key epoch.
func (ch *Channel) TxKeyEpoch(g Guard) protocol.KeyPhase {
	ch.verify(g)
	return ch.keys.TxKeyEpoch()
}

// RxKeyEpoch returns the current 1-RTT receive key epoch.
func (ch *Channel) RxKeyEpoch(g Guard) protocol.KeyPhase {
	ch.verify(g)
	return ch.keys.RxKeyEpoch()
}

// TriggerTXKU attempts a spontaneous TX key update. It reports whether the
// update was performed; an ineligible attempt is not a failure of the
// channel.
func (ch *Channel) TriggerTXKU(g Guard) bool {
	ch.verify(g)
	if ch.state != stateActive {
		return false
	}
	return ch.keys.TriggerTXKU()
}

// SetTXKUThresholdOverride sets a TXKU threshold packet count override.
// Testing use only.
func (ch *Channel) SetTXKUThresholdOverride(g Guard, numPackets uint64) {
	ch.verify(g)
	ch.keys.SetThresholdOverride(numPackets)
}

// Network binding.

// PeerAddr returns the current peer address.
func (ch *Channel) PeerAddr(g Guard) net.Addr {
	ch.verify(g)
	return ch.peerAddr
}

// SetPeerAddr sets the current peer address. Generally this is used before
// starting a channel in the client role.
func (ch *Channel) SetPeerAddr(g Guard, addr net.Addr) {
	ch.verify(g)
	ch.peerAddr = addr
}

// ReadTransport returns the underlying network receive transport.
func (ch *Channel) ReadTransport(g Guard) ReadTransport {
	ch.verify(g)
	return ch.readTransport
}

// SetReadTransport sets the underlying network receive transport.
func (ch *Channel) SetReadTransport(g Guard, rt ReadTransport) {
	ch.verify(g)
	ch.readTransport = rt
}

// WriteTransport returns the underlying network send transport.
func (ch *Channel) WriteTransport(g Guard) WriteTransport {
	ch.verify(g)
	return ch.writeTransport
}

// SetWriteTransport sets the underlying network send transport.
func (ch *Channel) SetWriteTransport(g Guard, wt WriteTransport) {
	ch.verify(g)
	ch.writeTransport = wt
}

// LocalConnID returns the connection ID under which incoming packets are
// routed to this channel.
func (ch *Channel) LocalConnID(g Guard) protocol.ConnectionID {
	ch.verify(g)
	return ch.localConnID
}

// ReplaceLocalConnID replaces the local connection ID, atomically updating
// both the outgoing packetization path and the demultiplexer binding.
// Intended for connection ID rotation and for tests.
func (ch *Channel) ReplaceLocalConnID(g Guard, id protocol.ConnectionID) {
	ch.verify(g)
	old := ch.localConnID
	ch.sender.SetSourceConnID(id)
	ch.demux.Rebind(old, id)
	ch.localConnID = id
	if ch.tracer != nil && ch.tracer.ReplacedLocalConnectionID != nil {
		ch.tracer.ReplacedLocalConnectionID(old, id)
	}
	ch.logger.Debugf("Replaced local connection ID: %s -> %s", old, id)
}

// Diagnostics and testing surface.

// Ping queues an ack-eliciting PING frame, forcing the transmission of a
// packet. Used to probe connection liveness.
func (ch *Channel) Ping(g Guard) error {
	ch.verify(g)
	if ch.state != stateActive {
		return errChannelNotActive
	}
	ch.sender.QueuePing()
	return nil
}

// HasPending says if any data is currently queued for transmission.
func (ch *Channel) HasPending(g Guard) bool {
	ch.verify(g)
	return ch.sender.HasPending()
}

// SetInhibitTick disables timer-driven ticking while set.
// Testing use only: it lets a test walk the channel through deterministic
// scenarios without the terminate and idle timers firing.
func (ch *Channel) SetInhibitTick(g Guard, inhibit bool) {
	ch.verify(g)
	ch.inhibitTick = inhibit
}

// SetMutator installs packet mutation hooks for conformance testing. The
// transmission path invokes mutate before a packet leaves the process and
// finish after it has been handed to the network. Both references are
// caller-owned; the channel never frees them.
func (ch *Channel) SetMutator(g Guard, mutate PacketMutator, finish FinishMutationFunc) {
	ch.verify(g)
	ch.mutator = mutate
	ch.finishMutation = finish
}

// Mutator returns the installed packet mutation hooks, for the transmission
// path's use.
func (ch *Channel) Mutator(g Guard) (PacketMutator, FinishMutationFunc) {
	ch.verify(g)
	return ch.mutator, ch.finishMutation
}

// SetMsgCallback installs a wire-trace hook observing packets as they are
// sent and received. Caller-owned; pass nil to remove it.
func (ch *Channel) SetMsgCallback(g Guard, cb MsgCallback) {
	ch.verify(g)
	ch.msgCallback = cb
}

// MsgCallback returns the installed wire-trace hook.
func (ch *Channel) MsgCallback(g Guard) MsgCallback {
	ch.verify(g)
	return ch.msgCallback
}

// saveErrState snapshots the current error state so that it can later be
// reinstated with RestoreErrState.
func (ch *Channel) saveErrState() {
	if ch.lastErr != nil {
		ch.savedErr = ch.lastErr
	}
}

// RestoreErrState restores the saved error state. Best effort: a provisional
// failed operation may have clobbered details that were never saved.
func (ch *Channel) RestoreErrState(g Guard) {
	ch.verify(g)
	if ch.savedErr != nil {
		ch.lastErr = ch.savedErr
	}
}

// LastError returns the most recent terminal error recorded on the channel.
func (ch *Channel) LastError(g Guard) error {
	ch.verify(g)
	return ch.lastErr
}

// Accessors.

// Perspective returns the channel's role.
func (ch *Channel) Perspective() protocol.Perspective { return ch.perspective }

// Reactor returns the reactor which is used to determine when the channel
// next needs to be ticked.
func (ch *Channel) Reactor() *Reactor { return ch.reactor }

// StreamMap returns the stream map used with the channel.
func (ch *Channel) StreamMap() *StreamMap { return ch.streams }

// RTTStats returns the statistics engine used with the channel.
func (ch *Channel) RTTStats() *RTTStats { return ch.rttStats }

// Demux returns the packet demultiplexer binding owned by the channel.
func (ch *Channel) Demux() *Demux { return ch.demux }

// Handshaker returns the handshake object supplied at construction.
func (ch *Channel) Handshaker() Handshaker { return ch.handshaker }

// Mutex returns the channel mutex which was provided when the channel was
// instantiated. It is the caller's responsibility to hold this mutex while
// calling any channel method taking a Guard; the usual way to do so is
// Lock/WithLock. The mutex does not belong to the channel but to its owner,
// which allows pairing it with a condition variable to build blocking
// semantics above this layer.
//
// This method is safe to call without prior locking.
func (ch *Channel) Mutex() *sync.Mutex { return ch.mutex }

// Close tears the channel down, releasing every exclusively owned dependency
// exactly once. It is idempotent and a no-op on a nil channel. The channel
// mutex, the transports and the installed callbacks are caller-managed and
// are left untouched.
func (ch *Channel) Close() error {
	if ch == nil {
		return nil
	}
	var err error
	ch.closeOnce.Do(func() {
		ch.mutex.Lock()
		defer ch.mutex.Unlock()
		if !ch.terminateCause.IsSet() {
			ch.setTerminateCause(TerminateCause{
				Origin:    OriginLocal,
				Space:     SpaceApplication,
				ErrorCode: 0,
				Reason:    "channel torn down",
			})
		}
		ch.becomeTerminated()
		err = ch.handshaker.Close()
		ch.demux.Unregister(ch.localConnID)
		ch.streams.close()
		if ch.tracer != nil && ch.tracer.Close != nil {
			ch.tracer.Close()
		}
	})
	return err
}
