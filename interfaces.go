package libevents

type (
	// Publisher triggers events.
	Publisher[K comparable, V any] interface {
		// Emit calls every listener registered for event synchronously and reports
		// whether there was any.
		Emit(event K, args ...V) bool
	}

	// Subscriber manages listener registrations. S is what the mutators return for
	// chaining, *Emitter[K, V] for the Emitter.
	Subscriber[K comparable, V any, S any] interface {
		// On registers listener at the end of event's listeners.
		On(event K, listener *Listener[V], recv ...any) S

		// Once registers listener for the next Emit of event only.
		Once(event K, listener *Listener[V], recv ...any) S

		// PrependListener registers listener ahead of event's other listeners.
		PrependListener(event K, listener *Listener[V], recv ...any) S

		// PrependOnceListener is the one-shot version of PrependListener.
		PrependOnceListener(event K, listener *Listener[V], recv ...any) S

		// Off removes one registration of listener, or all of event's registrations if
		// listener is nil.
		Off(event K, listener *Listener[V]) S

		// OffAll removes all listeners for all events.
		OffAll() S
	}

	// Inspector exposes read-only views of the registrations.
	Inspector[K comparable, V any] interface {
		EventNames() []K
		RawListeners(event K) []*Listener[V]
		Listeners(event K) []*Listener[V]
		HasListener(event K, listener *Listener[V]) bool
		ListenerCount(event K) int
	}

	EventEmitter[K comparable, V any, S any] interface {
		Publisher[K, V]
		Subscriber[K, V, S]
		Inspector[K, V]
	}
)

var _ EventEmitter[EventKey, any, *Emitter[EventKey, any]] = (*Emitter[EventKey, any])(nil)
