// Package metrics provides a Prometheus-based ConnectionTracer for channel
// lifecycle events.
package metrics

import (
	"errors"
	"time"

	"github.com/quicch/quicch/internal/qerr"
	"github.com/quicch/quicch/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "quicch"

var (
	connStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connections_started_total",
			Help:      "Connections Started",
		},
		[]string{"dir"},
	)
	connClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connections_closed_total",
			Help:      "Connections Closed",
		},
		[]string{"dir", "reason"},
	)
	connDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "connection_duration_seconds",
			Help:      "Duration of a Connection",
			Buckets:   prometheus.ExponentialBuckets(1.0/16, 2, 25), // up to 24 days
		},
		[]string{"dir"},
	)
	connHandshakeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "handshake_duration_seconds",
			Help:      "Duration of the QUIC Handshake",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.3, 35),
		},
		[]string{"dir"},
	)
	keyUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "key_updates_total",
			Help:      "1-RTT Key Updates",
		},
		[]string{"dir", "initiator"},
	)
)

// NewClientConnectionTracer creates a new connection tracer for a connection
// dialed on the client side.
func NewClientConnectionTracer() *logging.ConnectionTracer {
	return NewClientConnectionTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewClientConnectionTracerWithRegisterer creates a new connection tracer for
// a connection dialed on the client side with a given Prometheus registerer.
func NewClientConnectionTracerWithRegisterer(registerer prometheus.Registerer) *logging.ConnectionTracer {
	return newConnectionTracerWithRegisterer(registerer, true)
}

// NewServerConnectionTracer creates a new connection tracer for a connection
// accepted on the server side.
func NewServerConnectionTracer() *logging.ConnectionTracer {
	return NewServerConnectionTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewServerConnectionTracerWithRegisterer creates a new connection tracer for
// a connection accepted on the server side with a given Prometheus registerer.
func NewServerConnectionTracerWithRegisterer(registerer prometheus.Registerer) *logging.ConnectionTracer {
	return newConnectionTracerWithRegisterer(registerer, false)
}

func newConnectionTracerWithRegisterer(registerer prometheus.Registerer, isClient bool) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		connStarted,
		connClosed,
		connDuration,
		connHandshakeDuration,
		keyUpdates,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	direction := "incoming"
	if isClient {
		direction = "outgoing"
	}

	var (
		startTime        time.Time
		handshakeStarted time.Time
	)
	return &logging.ConnectionTracer{
		UpdatedConnectionState: func(state logging.ConnectionState) {
			if state != logging.ConnectionStateActive {
				return
			}
			startTime = time.Now()
			handshakeStarted = startTime
			connStarted.WithLabelValues(direction).Inc()
		},
		ConfirmedHandshake: func() {
			if handshakeStarted.IsZero() {
				return
			}
			connHandshakeDuration.WithLabelValues(direction).Observe(time.Since(handshakeStarted).Seconds())
		},
		UpdatedKey: func(_ logging.KeyPhase, remote bool) {
			initiator := "local"
			if remote {
				initiator = "remote"
			}
			keyUpdates.WithLabelValues(direction, initiator).Inc()
		},
		ClosedConnection: func(err error) {
			reason := closeReason(err)
			connClosed.WithLabelValues(direction, reason).Inc()
			if !startTime.IsZero() {
				connDuration.WithLabelValues(direction).Observe(time.Since(startTime).Seconds())
			}
		},
	}
}

func closeReason(err error) string {
	var (
		transportErr *qerr.TransportError
		appErr       *qerr.ApplicationError
		idleTimeout  *qerr.IdleTimeoutError
	)
	switch {
	case errors.As(err, &transportErr):
		if transportErr.Remote {
			return "transport_error_remote"
		}
		return "transport_error_local"
	case errors.As(err, &appErr):
		if appErr.Remote {
			return "application_error_remote"
		}
		return "application_error_local"
	case errors.As(err, &idleTimeout):
		return "idle_timeout"
	default:
		return "unknown"
	}
}
