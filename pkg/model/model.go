// Package model provides the observable state-model core shared with
// foreign consumers.
//
// # Core Components
//
//   - [Model]: owns one state value behind a mutex, applies mutations
//     atomically, and pushes every effective change to a registered
//     [Listener] before the mutating call returns.
//
//   - [Listener]: the observer capability a consumer supplies at
//     construction time. Implementations receive an immutable snapshot
//     and must not block; the mutating caller waits for them.
//
//   - [BackgroundTask]: a cancellable periodic goroutine used by models
//     that mutate themselves on a timer. At most one run is live per
//     task, and Stop waits for quiescence.
//
// # Basic Usage
//
//	m := model.New(initial, model.ListenerFunc[MyState](func(s MyState) {
//	    // push s across the boundary
//	}))
//	m.Mutate(func(s *MyState) { s.Count++ })
//	defer m.Dispose()
package model

import (
	"fmt"
	"sync"

	"github.com/go-ripple/ripple/pkg/errors"
	"github.com/go-ripple/ripple/pkg/logging"
)

// Listener receives state snapshots after each effective mutation.
//
// Listeners are invoked synchronously with respect to the state change,
// on whatever goroutine performed the mutation, and outside the model's
// lock. A listener may read snapshots but must not block on the model.
type Listener[S any] interface {
	StateChanged(newState S)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc[S any] func(S)

// StateChanged calls f.
func (f ListenerFunc[S]) StateChanged(newState S) { f(newState) }

// NopListener discards all notifications.
type NopListener[S any] struct{}

// StateChanged does nothing.
func (NopListener[S]) StateChanged(S) {}

// Model owns a single state value and notifies its listener on every
// effective mutation. The state type must be comparable so the model can
// suppress notifications for mutations that leave the state unchanged.
//
// All mutations are mutually exclusive: a read-modify-write applied via
// Mutate is never lost to a concurrent mutation.
type Model[S comparable] struct {
	mu        sync.Mutex
	state     S
	listener  Listener[S]
	disposers []func()
	disposed  bool
}

// New creates a model holding initial and notifying listener on change.
// A nil listener is allowed; the model then mutates silently.
func New[S comparable](initial S, listener Listener[S]) *Model[S] {
	return &Model[S]{
		state:    initial,
		listener: listener,
	}
}

// Snapshot returns a copy of the current state. No notification occurs.
func (m *Model[S]) Snapshot() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Access runs fn with a copy of the current state.
func (m *Model[S]) Access(fn func(S)) {
	fn(m.Snapshot())
}

// Mutate applies fn to the state under the model's lock. If the state
// actually changed, the listener is invoked with a copy of the new state,
// outside the lock, before Mutate returns. Mutations on a disposed model
// are no-ops.
func (m *Model[S]) Mutate(fn func(*S)) {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	prev := m.state
	fn(&m.state)
	next := m.state
	changed := next != prev
	listener := m.listener
	m.mu.Unlock()

	if changed && listener != nil {
		m.notify(listener, next)
	}
}

// notify calls out to the listener, recovering a panicking listener so it
// cannot kill the mutating caller or a tick loop.
func (m *Model[S]) notify(listener Listener[S], newState S) {
	defer errors.Recover("model.notify")
	logging.Tracef("model", "notifying listener of state change: %v", newState)
	listener.StateChanged(newState)
}

// Equal reports whether both models currently hold the same state.
// Listener identity does not participate in equality.
func (m *Model[S]) Equal(other *Model[S]) bool {
	if other == nil {
		return false
	}
	return m.Snapshot() == other.Snapshot()
}

// String renders the current state. The format is the state's own and is
// identical for debug and display purposes.
func (m *Model[S]) String() string {
	return fmt.Sprintf("%v", m.Snapshot())
}

// OnDispose registers a cleanup function to be called when the model is
// disposed. Returns an unregister function that can be called to remove
// the disposer. The cleanup function will only be called once.
func (m *Model[S]) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disposed {
		// Already disposed, run cleanup immediately
		cleanup()
		return func() {}
	}

	index := len(m.disposers)
	m.disposers = append(m.disposers, cleanup)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if index < len(m.disposers) {
			m.disposers[index] = nil
		}
	}
}

// Dispose marks the model disposed and runs registered disposers in
// reverse order. Disposers run outside the lock: they may need to wait on
// goroutines that themselves mutate the model. After Dispose no mutation
// takes effect and no notification is delivered.
func (m *Model[S]) Dispose() {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	m.disposed = true
	disposers := m.disposers
	m.disposers = nil
	m.mu.Unlock()

	// Run disposers in reverse order (LIFO)
	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// IsDisposed returns true if this model has been disposed.
func (m *Model[S]) IsDisposed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disposed
}
