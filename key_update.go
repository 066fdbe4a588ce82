package quicch

import (
	"crypto"
	_ "crypto/sha256" // registers the hash the key schedule defaults to
	"encoding/binary"

	"golang.org/x/crypto/hkdf"

	"github.com/quicch/quicch/internal/protocol"
	"github.com/quicch/quicch/internal/utils"
	"github.com/quicch/quicch/logging"
)

// The keyUpdateTracker keeps the per-direction 1-RTT key epochs and decides
// when a locally initiated key update (TXKU) is allowed. The actual AEADs are
// built by the handshake layer; the tracker only maintains the epoch counters
// and the next-generation traffic secret handed to the transmission path.
//
// A TXKU is only eligible once the handshake is confirmed and every packet
// sent under the current key phase has been acknowledged, so that no un-acked
// traffic spans a rotation boundary.
type keyUpdateTracker struct {
	logger utils.Logger
	tracer *logging.ConnectionTracer

	hash     crypto.Hash
	txSecret []byte

	txEpoch protocol.KeyPhase
	rxEpoch protocol.KeyPhase

	handshakeConfirmed bool

	firstSentWithCurrentKey   protocol.PacketNumber
	highestSentWithCurrentKey protocol.PacketNumber
	largestAcked              protocol.PacketNumber
	numSentWithCurrentKey     uint64

	// thresholdOverride forces an automatic TXKU attempt after this many
	// packets sent under the current phase. Testing use only; zero means the
	// default update interval applies.
	thresholdOverride uint64

	rollTxKeys func(phase protocol.KeyPhase, nextTrafficSecret []byte)
}

func newKeyUpdateTracker(
	initialTrafficSecret []byte,
	rollTxKeys func(protocol.KeyPhase, []byte),
	tracer *logging.ConnectionTracer,
	logger utils.Logger,
) *keyUpdateTracker {
	return &keyUpdateTracker{
		hash:                      crypto.SHA256,
		txSecret:                  initialTrafficSecret,
		firstSentWithCurrentKey:   protocol.InvalidPacketNumber,
		highestSentWithCurrentKey: protocol.InvalidPacketNumber,
		largestAcked:              protocol.InvalidPacketNumber,
		rollTxKeys:                rollTxKeys,
		tracer:                    tracer,
		logger:                    logger,
	}
}

func (t *keyUpdateTracker) SetHandshakeConfirmed() { t.handshakeConfirmed = true }

// SetTrafficSecret installs the current 1-RTT send traffic secret, from which
// next-generation secrets are derived on every update.
func (t *keyUpdateTracker) SetTrafficSecret(secret []byte) { t.txSecret = secret }

// TxKeyEpoch returns the current 1-RTT send key epoch.
func (t *keyUpdateTracker) TxKeyEpoch() protocol.KeyPhase { return t.txEpoch }

// RxKeyEpoch returns the current 1-RTT receive key epoch.
func (t *keyUpdateTracker) RxKeyEpoch() protocol.KeyPhase { return t.rxEpoch }

// OnPacketSent records a 1-RTT packet sent under the current key phase.
func (t *keyUpdateTracker) OnPacketSent(pn protocol.PacketNumber) {
	if t.firstSentWithCurrentKey == protocol.InvalidPacketNumber {
		t.firstSentWithCurrentKey = pn
	}
	t.highestSentWithCurrentKey = pn
	t.numSentWithCurrentKey++
}

// OnPacketAcked records the highest acknowledged 1-RTT packet. It may trigger
// a spontaneous TXKU once the configured packet threshold for the current
// phase is exceeded: the ack is what completes eligibility, since rotation
// must not span un-acked traffic.
func (t *keyUpdateTracker) OnPacketAcked(pn protocol.PacketNumber) {
	if pn > t.largestAcked {
		t.largestAcked = pn
	}

	threshold := uint64(protocol.KeyUpdateInterval)
	if t.thresholdOverride != 0 {
		threshold = t.thresholdOverride
	}
	if t.numSentWithCurrentKey >= threshold {
		t.TriggerTXKU()
	}
}

// OnRXKeyUpdateDetected records that the receive path unprotected a packet
// under the next key phase, i.e. the peer initiated a key update.
func (t *keyUpdateTracker) OnRXKeyUpdateDetected() {
	t.rxEpoch++
	if t.logger.Debug() {
		t.logger.Debugf("Peer updated keys to epoch %d", t.rxEpoch)
	}
	if t.tracer != nil && t.tracer.UpdatedKey != nil {
		t.tracer.UpdatedKey(t.rxEpoch, true)
	}
}

// TriggerTXKU attempts a locally initiated key update. It reports whether the
// update was performed; an ineligible request is not an error, the caller may
// simply try again later.
func (t *keyUpdateTracker) TriggerTXKU() bool {
	if !t.handshakeConfirmed {
		return false
	}
	// A previous rotation is still in flight until a packet of the current
	// phase has been sent and acknowledged.
	if t.firstSentWithCurrentKey == protocol.InvalidPacketNumber {
		return false
	}
	if t.largestAcked == protocol.InvalidPacketNumber || t.largestAcked < t.highestSentWithCurrentKey {
		return false
	}

	t.txEpoch++
	t.txSecret = t.nextTrafficSecret()
	t.firstSentWithCurrentKey = protocol.InvalidPacketNumber
	t.highestSentWithCurrentKey = protocol.InvalidPacketNumber
	t.numSentWithCurrentKey = 0
	if t.logger.Debug() {
		t.logger.Debugf("Updating send keys to epoch %d", t.txEpoch)
	}
	if t.tracer != nil && t.tracer.UpdatedKey != nil {
		t.tracer.UpdatedKey(t.txEpoch, false)
	}
	t.rollTxKeys(t.txEpoch, t.txSecret)
	return true
}

// SetThresholdOverride sets a TXKU threshold packet count override.
// Testing use only.
func (t *keyUpdateTracker) SetThresholdOverride(numPackets uint64) {
	t.thresholdOverride = numPackets
}

func (t *keyUpdateTracker) nextTrafficSecret() []byte {
	return hkdfExpandLabel(t.hash, t.txSecret, nil, "quic ku", t.hash.Size())
}

// hkdfExpandLabel HKDF expands a label as defined in RFC 8446, section 7.1.
func hkdfExpandLabel(hash crypto.Hash, secret, context []byte, label string, length int) []byte {
	b := make([]byte, 3, 3+6+len(label)+1+len(context))
	binary.BigEndian.PutUint16(b, uint16(length))
	b[2] = uint8(6 + len(label))
	b = append(b, []byte("tls13 ")...)
	b = append(b, []byte(label)...)
	b = b[:3+6+len(label)+1]
	b[3+6+len(label)] = uint8(len(context))
	b = append(b, context...)
	out := make([]byte, length)
	n, err := hkdf.Expand(hash.New, secret, b).Read(out)
	if err != nil || n != length {
		panic("quicch: HKDF-Expand-Label invocation failed unexpectedly")
	}
	return out
}
