package quicch

import (
	"github.com/quicch/quicch/internal/protocol"
)

// A Demux routes incoming raw packets to the owning channel by destination
// connection ID. A channel creates and exclusively owns its demultiplexer
// binding; in a multi-connection deployment the routing table would be shared,
// but one table per channel keeps the single-connection case self-contained.
//
// All methods require the channel mutex to be held.
type Demux struct {
	routes map[protocol.ConnectionID]*Channel
}

func newDemux() *Demux {
	return &Demux{routes: make(map[protocol.ConnectionID]*Channel)}
}

// Register adds a route from the given connection ID to the channel.
func (d *Demux) Register(id protocol.ConnectionID, ch *Channel) {
	d.routes[id] = ch
}

// Unregister removes the route for the given connection ID, if any.
func (d *Demux) Unregister(id protocol.ConnectionID) {
	delete(d.routes, id)
}

// Route returns the channel packets carrying the given destination connection
// ID belong to, or nil if the ID is not bound.
func (d *Demux) Route(id protocol.ConnectionID) *Channel {
	return d.routes[id]
}

// Rebind atomically moves a route to a new connection ID.
// Used when the local connection ID is replaced.
func (d *Demux) Rebind(from, to protocol.ConnectionID) {
	ch, ok := d.routes[from]
	if !ok {
		return
	}
	delete(d.routes, from)
	d.routes[to] = ch
}

// Len returns the number of bound connection IDs.
func (d *Demux) Len() int { return len(d.routes) }
