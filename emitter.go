package libevents

import (
	"slices"
	"sync"
)

// Emitter is a synchronous event emitter. It maps events (of type K) to ordered listener
// registrations, and calls them with arguments (of type V) on Emit.
//
// Registering the same listener twice yields two independent registrations. Listeners run
// in the caller's goroutine, in registration order. The internal lock is never held while a
// listener runs, so listeners may call On, Off or Emit on the same emitter; a nested Emit
// runs to completion before the outer one moves on to its next listener.
//
// Emit works on a snapshot of the registrations taken when it starts. A registration removed
// before its turn is skipped, one added during the pass is only seen by later emits.
// Panics raised by listeners are not recovered: they leave Emit and the rest of the pass is
// skipped.
type Emitter[K comparable, V any] struct {
	mu     sync.Mutex
	events map[K][]*record[V]
	// keys in first-registration order
	order  []K
	warned map[K]struct{}

	maxListeners int
	logger       Logger
}

// NewEmitter creates a new Emitter and returns a pointer to it.
func NewEmitter[K comparable, V any](opts ...Option) *Emitter[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Emitter[K, V]{
		events:       make(map[K][]*record[V]),
		warned:       make(map[K]struct{}),
		maxListeners: o.maxListeners,
		logger:       o.logger.WithField("component", "emitter"),
	}
}

// EventNames returns every key holding at least one listener, in the order the keys were
// first registered. A key that was fully removed and registered again goes last.
func (e *Emitter[K, V]) EventNames() []K {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.order)
}

// RawListeners returns the listeners registered for event, in order, as they were passed
// to On, Once and friends.
func (e *Emitter[K, V]) RawListeners(event K) []*Listener[V] {
	e.mu.Lock()
	defer e.mu.Unlock()

	recs := e.events[event]
	res := make([]*Listener[V], 0, len(recs))
	for _, r := range recs {
		res = append(res, r.raw)
	}
	return res
}

// Listeners is like RawListeners but returns the handles Emit actually invokes. For one-shot
// registrations this is the wrapper that removes itself after running.
func (e *Emitter[K, V]) Listeners(event K) []*Listener[V] {
	e.mu.Lock()
	defer e.mu.Unlock()

	recs := e.events[event]
	res := make([]*Listener[V], 0, len(recs))
	for _, r := range recs {
		res = append(res, r.dispatch)
	}
	return res
}

// HasListener reports whether listener is registered for event.
func (e *Emitter[K, V]) HasListener(event K, listener *Listener[V]) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range e.events[event] {
		if r.raw == listener {
			return true
		}
	}
	return false
}

// ListenerCount returns the number of registrations for event.
func (e *Emitter[K, V]) ListenerCount(event K) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.events[event])
}

// On registers listener at the end of event's listeners. recv, if given, is bound to the
// registration and handed to the listener on every call.
func (e *Emitter[K, V]) On(event K, listener *Listener[V], recv ...any) *Emitter[K, V] {
	return e.add(event, &record[V]{raw: listener, dispatch: listener, recv: receiverOf(recv)}, false)
}

// AddListener is an alias for On.
func (e *Emitter[K, V]) AddListener(event K, listener *Listener[V], recv ...any) *Emitter[K, V] {
	return e.On(event, listener, recv...)
}

// PrependListener registers listener before all the listeners already registered for event.
func (e *Emitter[K, V]) PrependListener(event K, listener *Listener[V], recv ...any) *Emitter[K, V] {
	return e.add(event, &record[V]{raw: listener, dispatch: listener, recv: receiverOf(recv)}, true)
}

// Once registers listener to be called on the next Emit of event only.
func (e *Emitter[K, V]) Once(event K, listener *Listener[V], recv ...any) *Emitter[K, V] {
	return e.add(event, e.onceRecord(event, listener, receiverOf(recv)), false)
}

// PrependOnceListener is like Once but puts the registration first.
func (e *Emitter[K, V]) PrependOnceListener(event K, listener *Listener[V], recv ...any) *Emitter[K, V] {
	return e.add(event, e.onceRecord(event, listener, receiverOf(recv)), true)
}

// Off removes the first registration of listener for event, matching either the handle
// given at registration or the one returned by Listeners. Only one registration is removed
// per call. A nil listener removes every registration for event.
func (e *Emitter[K, V]) Off(event K, listener *Listener[V]) *Emitter[K, V] {
	e.mu.Lock()
	emptied := e.remove(event, listener)
	e.mu.Unlock()

	if emptied {
		e.log().Debugf("no listeners left for %v", event)
	}

	return e
}

// RemoveListener is an alias for Off with a non-nil listener.
func (e *Emitter[K, V]) RemoveListener(event K, listener *Listener[V]) *Emitter[K, V] {
	if listener == nil {
		return e
	}
	return e.Off(event, listener)
}

// RemoveAllListeners removes every registration for the given events, or for all events
// when none is given.
func (e *Emitter[K, V]) RemoveAllListeners(events ...K) *Emitter[K, V] {
	if len(events) == 0 {
		return e.OffAll()
	}
	for _, event := range events {
		e.Off(event, nil)
	}
	return e
}

// OffAll removes all listeners of all events.
func (e *Emitter[K, V]) OffAll() *Emitter[K, V] {
	e.mu.Lock()
	for _, recs := range e.events {
		for _, r := range recs {
			r.removed.Store(true)
		}
	}
	count := len(e.order)
	e.events = make(map[K][]*record[V])
	e.warned = make(map[K]struct{})
	e.order = nil
	e.mu.Unlock()

	e.log().Debugf("removed all listeners of %d events", count)

	return e
}

// Emit calls every listener registered for event, in order, with its bound receiver and
// args. It returns false, without calling anything, when event has no listeners.
func (e *Emitter[K, V]) Emit(event K, args ...V) bool {
	e.mu.Lock()
	recs := e.events[event]
	if len(recs) == 0 {
		e.mu.Unlock()
		return false
	}
	snapshot := slices.Clone(recs)
	e.mu.Unlock()

	for _, r := range snapshot {
		if r.removed.Load() {
			continue
		}
		r.dispatch.fn(r.recv, args...)
	}

	return true
}

// SetMaxListeners sets the per-event count above which a leak warning is logged.
// n <= 0 disables the warning.
func (e *Emitter[K, V]) SetMaxListeners(n int) *Emitter[K, V] {
	e.mu.Lock()
	defer e.mu.Unlock()

	if n < 0 {
		n = 0
	}
	e.maxListeners = n
	return e
}

func (e *Emitter[K, V]) MaxListeners() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.maxListeners
}

func (e *Emitter[K, V]) onceRecord(event K, listener *Listener[V], recv any) *record[V] {
	wrapper := &Listener[V]{}
	wrapper.fn = func(recv any, args ...V) {
		listener.fn(recv, args...)
		e.Off(event, wrapper)
	}
	return &record[V]{raw: listener, dispatch: wrapper, recv: recv}
}

func (e *Emitter[K, V]) add(event K, rec *record[V], prepend bool) *Emitter[K, V] {
	e.mu.Lock()
	if e.events == nil {
		e.events = make(map[K][]*record[V])
		e.warned = make(map[K]struct{})
	}

	recs, found := e.events[event]
	if !found {
		e.order = append(e.order, event)
	}

	if prepend {
		recs = slices.Insert(recs, 0, rec)
	} else {
		recs = append(recs, rec)
	}
	e.events[event] = recs

	warning := e.checkMaxListeners(event, len(recs))
	e.mu.Unlock()

	// logged without the lock so loggers may inspect the emitter
	if !found {
		e.log().Debugf("registering first listener for %v", event)
	}
	if warning != nil {
		e.log().Warn(warning)
	}

	return e
}

// remove drops the first registration matching listener, or all of them when listener is
// nil, and reports whether event is gone. Must be called with the lock held.
func (e *Emitter[K, V]) remove(event K, listener *Listener[V]) bool {
	recs, found := e.events[event]
	if !found {
		return false
	}

	if listener != nil {
		i := slices.IndexFunc(recs, func(r *record[V]) bool { return r.matches(listener) })
		if i < 0 {
			return false
		}
		recs[i].removed.Store(true)
		// slices.Delete clears the vacated tail, the map must not keep the old length
		recs = slices.Delete(recs, i, i+1)
		e.events[event] = recs
		if len(recs) > 0 {
			return false
		}
	}

	for _, r := range recs {
		r.removed.Store(true)
	}
	delete(e.events, event)
	delete(e.warned, event)
	if i := slices.Index(e.order, event); i >= 0 {
		e.order = slices.Delete(e.order, i, i+1)
	}

	return true
}

// checkMaxListeners reports the leak warning once per event until the event is cleared.
func (e *Emitter[K, V]) checkMaxListeners(event K, count int) error {
	if e.maxListeners <= 0 || count <= e.maxListeners {
		return nil
	}
	if _, ok := e.warned[event]; ok {
		return nil
	}
	e.warned[event] = struct{}{}
	return NewMaxListenersExceededError(event, count, e.maxListeners)
}

func (e *Emitter[K, V]) log() Logger {
	if e.logger == nil {
		return noopLogger{}
	}
	return e.logger
}
