package quicch

// A Guard is proof that the channel mutex is held by the calling goroutine.
//
// The channel is driven by a single mutex supplied by its instantiator, so
// that blocking semantics can be built above this layer by pairing the mutex
// with a condition variable. Every method that mutates or reads channel state
// takes a Guard parameter; obtaining one is only possible by locking the
// channel, which turns the "caller must hold the lock" precondition into
// something the code can check instead of a documentation-only contract.
//
// A Guard is only valid for the channel that issued it. Passing a guard
// obtained from a different channel is a programming error and panics.
type Guard struct {
	ch *Channel
}

// Lock acquires the channel mutex and returns a Guard proving it is held.
// The caller must call Unlock on the returned Guard when done.
func (ch *Channel) Lock() Guard {
	ch.mutex.Lock()
	return Guard{ch: ch}
}

// Unlock releases the channel mutex.
func (g Guard) Unlock() {
	g.ch.mutex.Unlock()
}

// WithLock runs f while holding the channel mutex.
// It releases the mutex on every exit path, including panics.
func (ch *Channel) WithLock(f func(Guard)) {
	g := ch.Lock()
	defer g.Unlock()
	f(g)
}

// verify checks that g was issued by this channel.
func (ch *Channel) verify(g Guard) {
	if g.ch != ch {
		panic("quicch: guard used with a channel that did not issue it")
	}
}
