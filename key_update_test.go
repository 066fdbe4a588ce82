package quicch

import (
	"testing"

	"github.com/quicch/quicch/internal/protocol"
	"github.com/quicch/quicch/internal/utils"
	"github.com/quicch/quicch/logging"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type trackedRotation struct {
	phase  protocol.KeyPhase
	secret []byte
}

func newTestKeyUpdateTracker(rotations *[]trackedRotation) *keyUpdateTracker {
	t := newKeyUpdateTracker(
		[]byte("the initial traffic secret........"),
		func(phase protocol.KeyPhase, secret []byte) {
			*rotations = append(*rotations, trackedRotation{phase: phase, secret: secret})
		},
		nil,
		utils.DefaultLogger,
	)
	return t
}

func TestKeyUpdateEligibility(t *testing.T) {
	var rotations []trackedRotation
	tr := newTestKeyUpdateTracker(&rotations)

	// not before handshake confirmation
	require.False(t, tr.TriggerTXKU())
	tr.SetHandshakeConfirmed()

	// not before a packet has been sent with the current keys
	require.False(t, tr.TriggerTXKU())
	tr.OnPacketSent(10)

	// not before that packet has been acknowledged
	require.False(t, tr.TriggerTXKU())
	tr.OnPacketAcked(9)
	require.False(t, tr.TriggerTXKU())
	tr.OnPacketAcked(10)

	require.True(t, tr.TriggerTXKU())
	require.Equal(t, protocol.KeyPhase(1), tr.TxKeyEpoch())
	require.Len(t, rotations, 1)
	require.Equal(t, protocol.KeyPhase(1), rotations[0].phase)

	// the rotation is in flight again: no packet was sent with the new keys yet
	require.False(t, tr.TriggerTXKU())
	require.Equal(t, protocol.KeyPhase(1), tr.TxKeyEpoch())
	require.Len(t, rotations, 1)
}

func TestKeyUpdateSecretDerivation(t *testing.T) {
	var rotations []trackedRotation
	tr := newTestKeyUpdateTracker(&rotations)
	tr.SetHandshakeConfirmed()

	tr.OnPacketSent(1)
	tr.OnPacketAcked(1)
	require.True(t, tr.TriggerTXKU())
	tr.OnPacketSent(2)
	tr.OnPacketAcked(2)
	require.True(t, tr.TriggerTXKU())

	require.Len(t, rotations, 2)
	// every generation derives a fresh secret
	require.NotEqual(t, rotations[0].secret, rotations[1].secret)
	require.Len(t, rotations[0].secret, 32)

	// derivation only depends on the previous secret, so it is reproducible
	var replayed []trackedRotation
	tr2 := newTestKeyUpdateTracker(&replayed)
	tr2.SetHandshakeConfirmed()
	tr2.OnPacketSent(1)
	tr2.OnPacketAcked(1)
	require.True(t, tr2.TriggerTXKU())
	require.Equal(t, rotations[0].secret, replayed[0].secret)
}

func TestKeyUpdateThresholdOverride(t *testing.T) {
	var rotations []trackedRotation
	tr := newTestKeyUpdateTracker(&rotations)
	tr.SetHandshakeConfirmed()
	tr.SetThresholdOverride(3)

	for pn := protocol.PacketNumber(1); pn <= 2; pn++ {
		tr.OnPacketSent(pn)
		tr.OnPacketAcked(pn)
	}
	require.Empty(t, rotations)

	// the ack of the third packet under this phase crosses the threshold
	tr.OnPacketSent(3)
	require.Empty(t, rotations)
	tr.OnPacketAcked(3)
	require.Len(t, rotations, 1)
	require.Equal(t, protocol.KeyPhase(1), tr.TxKeyEpoch())

	// the counters restart for the new phase
	tr.OnPacketSent(4)
	tr.OnPacketAcked(4)
	require.Len(t, rotations, 1)
}

func TestKeyUpdateRXDetection(t *testing.T) {
	var keyEvents []struct {
		phase  logging.KeyPhase
		remote bool
	}
	tracer := &logging.ConnectionTracer{
		UpdatedKey: func(phase logging.KeyPhase, remote bool) {
			keyEvents = append(keyEvents, struct {
				phase  logging.KeyPhase
				remote bool
			}{phase, remote})
		},
	}
	tr := newKeyUpdateTracker(nil, func(protocol.KeyPhase, []byte) {}, tracer, utils.DefaultLogger)

	require.Equal(t, protocol.KeyPhase(0), tr.RxKeyEpoch())
	tr.OnRXKeyUpdateDetected()
	require.Equal(t, protocol.KeyPhase(1), tr.RxKeyEpoch())
	tr.OnRXKeyUpdateDetected()
	require.Equal(t, protocol.KeyPhase(2), tr.RxKeyEpoch())

	require.Len(t, keyEvents, 2)
	require.True(t, keyEvents[0].remote)
	require.Equal(t, logging.KeyPhase(2), keyEvents[1].phase)
}

func TestChannelKeyUpdate(t *testing.T) {
	f := newChannelFixture(t, protocol.PerspectiveClient)
	g := f.ch.Lock()
	defer g.Unlock()
	f.start(t, g)

	f.ch.SetTxTrafficSecret(g, []byte("the 1-rtt traffic secret........"))
	require.False(t, f.ch.TriggerTXKU(g))

	f.ch.OnHandshakeConfirmed(g)
	f.ch.OnPacketSent(g, 1)
	f.ch.OnPacketAcked(g, 1)

	f.sender.EXPECT().RollTxKeys(protocol.KeyPhase(1), gomock.Not(gomock.Nil()))
	require.True(t, f.ch.TriggerTXKU(g))
	require.Equal(t, protocol.KeyPhase(1), f.ch.TxKeyEpoch(g))

	f.ch.OnRXKeyUpdateDetected(g)
	require.Equal(t, protocol.KeyPhase(1), f.ch.RxKeyEpoch(g))
}
