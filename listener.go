package libevents

import "sync/atomic"

type (
	// Callback is the body of a listener. recv is the value bound when the listener was
	// registered, nil if none was given.
	Callback[V any] func(recv any, args ...V)

	// Listener is a registrable callback handle. Listeners are compared by pointer, so the
	// same *Listener must be passed to Off or HasListener to refer to a registration.
	Listener[V any] struct {
		fn Callback[V]
	}

	// record is a single registration. dispatch is raw for plain registrations and a
	// self-removing wrapper for one-shot ones.
	record[V any] struct {
		raw      *Listener[V]
		dispatch *Listener[V]
		recv     any
		removed  atomic.Bool
	}
)

// NewListener returns a listener handle whose callback receives the bound receiver.
func NewListener[V any](fn Callback[V]) *Listener[V] {
	return &Listener[V]{fn: fn}
}

// ListenerFunc returns a listener handle for a callback that does not care about the
// bound receiver.
func ListenerFunc[V any](fn func(args ...V)) *Listener[V] {
	return &Listener[V]{fn: func(_ any, args ...V) { fn(args...) }}
}

// Call invokes the listener with recv bound and args passed positionally.
func (l *Listener[V]) Call(recv any, args ...V) {
	l.fn(recv, args...)
}

func (r *record[V]) matches(l *Listener[V]) bool {
	return r.dispatch == l || r.raw == l
}

func receiverOf(recv []any) any {
	if len(recv) == 0 {
		return nil
	}
	return recv[0]
}
