package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiplexedConnectionTracer(t *testing.T) {
	var events1, events2 []string
	t1 := &ConnectionTracer{
		ClosedConnection:       func(error) { events1 = append(events1, "closed") },
		UpdatedKey:             func(KeyPhase, bool) { events1 = append(events1, "key") },
		UpdatedConnectionState: func(ConnectionState) { events1 = append(events1, "state") },
	}
	t2 := &ConnectionTracer{
		ClosedConnection: func(error) { events2 = append(events2, "closed") },
	}

	tracer := NewMultiplexedConnectionTracer(t1, t2)
	tracer.ClosedConnection(errors.New("test"))
	tracer.UpdatedKey(1, true)
	tracer.UpdatedConnectionState(ConnectionStateTerminated)

	require.Equal(t, []string{"closed", "key", "state"}, events1)
	// t2 only subscribed to ClosedConnection
	require.Equal(t, []string{"closed"}, events2)
}

func TestMultiplexedConnectionTracerDegenerateCases(t *testing.T) {
	require.Nil(t, NewMultiplexedConnectionTracer())
	tr := &ConnectionTracer{}
	require.Same(t, tr, NewMultiplexedConnectionTracer(tr))
}

func TestConnectionStateStringer(t *testing.T) {
	require.Equal(t, "idle", ConnectionStateIdle.String())
	require.Equal(t, "active", ConnectionStateActive.String())
	require.Equal(t, "closing", ConnectionStateClosing.String())
	require.Equal(t, "draining", ConnectionStateDraining.String())
	require.Equal(t, "terminated", ConnectionStateTerminated.String())
}
