// Package logging defines a logging interface for quicch.
// This package should not be considered stable.
package logging

import (
	"github.com/quicch/quicch/internal/protocol"
)

type (
	// A ConnectionID is a QUIC Connection ID.
	ConnectionID = protocol.ConnectionID
	// The KeyPhase is the key phase of the 1-RTT keys.
	KeyPhase = protocol.KeyPhase
	// The KeyPhaseBit is the value of the key phase bit of the 1-RTT packets.
	KeyPhaseBit = protocol.KeyPhaseBit
	// The Perspective is the role of a QUIC endpoint (client or server).
	Perspective = protocol.Perspective
	// A StreamID is a QUIC stream ID.
	StreamID = protocol.StreamID
	// An ApplicationErrorCode is an application-defined error code.
	ApplicationErrorCode = protocol.ApplicationErrorCode
)

const (
	// PerspectiveServer is used for a QUIC server
	PerspectiveServer Perspective = protocol.PerspectiveServer
	// PerspectiveClient is used for a QUIC client
	PerspectiveClient Perspective = protocol.PerspectiveClient
)

// A ConnectionState is the lifecycle state of a channel.
type ConnectionState uint8

const (
	// ConnectionStateIdle is the state before the channel is started.
	ConnectionStateIdle ConnectionState = iota
	// ConnectionStateActive is the state of a started channel.
	ConnectionStateActive
	// ConnectionStateClosing is entered after a locally initiated termination.
	ConnectionStateClosing
	// ConnectionStateDraining is entered after a remotely initiated termination.
	ConnectionStateDraining
	// ConnectionStateTerminated is the final state.
	ConnectionStateTerminated
)

func (s ConnectionState) String() string {
	switch s {
	case ConnectionStateIdle:
		return "idle"
	case ConnectionStateActive:
		return "active"
	case ConnectionStateClosing:
		return "closing"
	case ConnectionStateDraining:
		return "draining"
	case ConnectionStateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
