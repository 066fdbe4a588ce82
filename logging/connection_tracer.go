package logging

import "net"

// A ConnectionTracer records events.
// Set the callbacks for the events you're interested in, all other events are ignored.
type ConnectionTracer struct {
	StartedConnection         func(local, remote net.Addr, srcConnID, destConnID ConnectionID)
	ClosedConnection          func(err error)
	UpdatedConnectionState    func(state ConnectionState)
	UpdatedKey                func(keyPhase KeyPhase, remote bool)
	DroppedKey                func(keyPhase KeyPhase)
	ConfirmedHandshake        func()
	ReplacedLocalConnectionID func(from, to ConnectionID)
	Close                     func()
}

// NewMultiplexedConnectionTracer creates a new connection tracer that multiplexes events to multiple tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &ConnectionTracer{
		StartedConnection: func(local, remote net.Addr, srcConnID, destConnID ConnectionID) {
			for _, t := range tracers {
				if t.StartedConnection != nil {
					t.StartedConnection(local, remote, srcConnID, destConnID)
				}
			}
		},
		ClosedConnection: func(err error) {
			for _, t := range tracers {
				if t.ClosedConnection != nil {
					t.ClosedConnection(err)
				}
			}
		},
		UpdatedConnectionState: func(state ConnectionState) {
			for _, t := range tracers {
				if t.UpdatedConnectionState != nil {
					t.UpdatedConnectionState(state)
				}
			}
		},
		UpdatedKey: func(keyPhase KeyPhase, remote bool) {
			for _, t := range tracers {
				if t.UpdatedKey != nil {
					t.UpdatedKey(keyPhase, remote)
				}
			}
		},
		DroppedKey: func(keyPhase KeyPhase) {
			for _, t := range tracers {
				if t.DroppedKey != nil {
					t.DroppedKey(keyPhase)
				}
			}
		},
		ConfirmedHandshake: func() {
			for _, t := range tracers {
				if t.ConfirmedHandshake != nil {
					t.ConfirmedHandshake()
				}
			}
		},
		ReplacedLocalConnectionID: func(from, to ConnectionID) {
			for _, t := range tracers {
				if t.ReplacedLocalConnectionID != nil {
					t.ReplacedLocalConnectionID(from, to)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
