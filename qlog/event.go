package qlog

import (
	"errors"
	"net"
	"time"

	"github.com/quicch/quicch/internal/qerr"
	"github.com/quicch/quicch/logging"

	"github.com/francoispqt/gojay"
)

type category uint8

const (
	categoryTransport category = iota
	categorySecurity
)

func (c category) String() string {
	switch c {
	case categoryTransport:
		return "transport"
	case categorySecurity:
		return "security"
	default:
		return "unknown category"
	}
}

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", milliseconds(e.RelativeTime))
	enc.StringKey("name", e.Category().String()+":"+e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventConnectionStarted struct {
	SrcAddr          *net.UDPAddr
	DestAddr         *net.UDPAddr
	SrcConnectionID  logging.ConnectionID
	DestConnectionID logging.ConnectionID
}

var _ eventDetails = &eventConnectionStarted{}

func (e eventConnectionStarted) Category() category { return categoryTransport }
func (e eventConnectionStarted) Name() string       { return "connection_started" }
func (e eventConnectionStarted) IsNil() bool        { return false }

func (e eventConnectionStarted) MarshalJSONObject(enc *gojay.Encoder) {
	if e.SrcAddr != nil {
		enc.StringKey("src_ip", e.SrcAddr.IP.String())
		enc.IntKey("src_port", e.SrcAddr.Port)
	}
	if e.DestAddr != nil {
		enc.StringKey("dst_ip", e.DestAddr.IP.String())
		enc.IntKey("dst_port", e.DestAddr.Port)
	}
	enc.StringKey("src_cid", e.SrcConnectionID.String())
	enc.StringKey("dst_cid", e.DestConnectionID.String())
}

type eventConnectionStateUpdated struct {
	state logging.ConnectionState
}

func (e eventConnectionStateUpdated) Category() category { return categoryTransport }
func (e eventConnectionStateUpdated) Name() string       { return "connection_state_updated" }
func (e eventConnectionStateUpdated) IsNil() bool        { return false }

func (e eventConnectionStateUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("new", e.state.String())
}

type eventConnectionClosed struct {
	e error
}

func (e eventConnectionClosed) Category() category { return categoryTransport }
func (e eventConnectionClosed) Name() string       { return "connection_closed" }
func (e eventConnectionClosed) IsNil() bool        { return false }

func (e eventConnectionClosed) MarshalJSONObject(enc *gojay.Encoder) {
	var (
		transportErr *qerr.TransportError
		appErr       *qerr.ApplicationError
		idleTimeout  *qerr.IdleTimeoutError
	)
	switch {
	case errors.As(e.e, &transportErr):
		owner := "local"
		if transportErr.Remote {
			owner = "remote"
		}
		enc.StringKey("owner", owner)
		enc.StringKey("connection_code", transportErr.ErrorCode.String())
		enc.StringKey("reason", transportErr.ErrorMessage)
	case errors.As(e.e, &appErr):
		owner := "local"
		if appErr.Remote {
			owner = "remote"
		}
		enc.StringKey("owner", owner)
		enc.Uint64Key("application_code", uint64(appErr.ErrorCode))
		enc.StringKey("reason", appErr.ErrorMessage)
	case errors.As(e.e, &idleTimeout):
		enc.StringKey("owner", "local")
		enc.StringKey("trigger", "idle_timeout")
	}
}

type eventKeyUpdated struct {
	Generation logging.KeyPhase
	Remote     bool
}

func (e eventKeyUpdated) Category() category { return categorySecurity }
func (e eventKeyUpdated) Name() string       { return "key_updated" }
func (e eventKeyUpdated) IsNil() bool        { return false }

func (e eventKeyUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	trigger := "local_update"
	if e.Remote {
		trigger = "remote_update"
	}
	enc.StringKey("trigger", trigger)
	enc.Uint64Key("generation", uint64(e.Generation))
}

type eventHandshakeConfirmed struct{}

func (e eventHandshakeConfirmed) Category() category { return categoryTransport }
func (e eventHandshakeConfirmed) Name() string       { return "handshake_confirmed" }
func (e eventHandshakeConfirmed) IsNil() bool        { return false }

func (e eventHandshakeConfirmed) MarshalJSONObject(*gojay.Encoder) {}
