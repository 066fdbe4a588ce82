package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRTTStatsDefaultsBeforeUpdate(t *testing.T) {
	var rttStats RTTStats
	require.Zero(t, rttStats.MinRTT())
	require.Zero(t, rttStats.SmoothedRTT())
	// the PTO falls back to twice the initial RTT
	require.Equal(t, 2*defaultInitialRTT, rttStats.PTO(false))
}

func TestRTTStatsSmoothedRTT(t *testing.T) {
	var rttStats RTTStats
	rttStats.UpdateRTT(300*time.Millisecond, 100*time.Millisecond)
	require.Equal(t, 300*time.Millisecond, rttStats.LatestRTT())
	require.Equal(t, 300*time.Millisecond, rttStats.SmoothedRTT())
	// ackDelay is subtracted from the second sample
	rttStats.UpdateRTT(350*time.Millisecond, 50*time.Millisecond)
	require.Equal(t, 300*time.Millisecond, rttStats.LatestRTT())
	require.Equal(t, 300*time.Millisecond, rttStats.SmoothedRTT())
}

func TestRTTStatsMinRTT(t *testing.T) {
	var rttStats RTTStats
	rttStats.UpdateRTT(200*time.Millisecond, 0)
	require.Equal(t, 200*time.Millisecond, rttStats.MinRTT())
	rttStats.UpdateRTT(10*time.Millisecond, 0)
	require.Equal(t, 10*time.Millisecond, rttStats.MinRTT())
	rttStats.UpdateRTT(50*time.Millisecond, 0)
	require.Equal(t, 10*time.Millisecond, rttStats.MinRTT())
	// negative samples are ignored
	rttStats.UpdateRTT(-1*time.Millisecond, 0)
	require.Equal(t, 10*time.Millisecond, rttStats.MinRTT())
}

func TestRTTStatsPTO(t *testing.T) {
	var rttStats RTTStats
	rttStats.SetMaxAckDelay(25 * time.Millisecond)
	rttStats.UpdateRTT(100*time.Millisecond, 0)
	require.Equal(t, 100*time.Millisecond, rttStats.SmoothedRTT())
	require.Equal(t, 100*time.Millisecond+4*50*time.Millisecond, rttStats.PTO(false))
	require.Equal(t, 100*time.Millisecond+4*50*time.Millisecond+25*time.Millisecond, rttStats.PTO(true))
}

func TestRTTStatsInitialRTT(t *testing.T) {
	var rttStats RTTStats
	rttStats.SetInitialRTT(10 * time.Millisecond)
	require.Equal(t, 10*time.Millisecond, rttStats.SmoothedRTT())
	// a real measurement overrides the restored value
	rttStats.UpdateRTT(200*time.Millisecond, 0)
	// and a later restore attempt is discarded
	rttStats.SetInitialRTT(10 * time.Millisecond)
	require.NotEqual(t, 10*time.Millisecond, rttStats.SmoothedRTT())
}

func TestRTTStatsConnectionMigration(t *testing.T) {
	var rttStats RTTStats
	rttStats.UpdateRTT(200*time.Millisecond, 0)
	rttStats.OnConnectionMigration()
	require.Zero(t, rttStats.LatestRTT())
	require.Zero(t, rttStats.MinRTT())
	require.Zero(t, rttStats.SmoothedRTT())
}
