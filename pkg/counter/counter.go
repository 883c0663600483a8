// Package counter implements the counter state models driven from
// foreign consumers: an auto-incrementing [Counter] with a background
// ticking process, and a [ManualOnlyCounter] that additionally exposes
// the structural-hash coverage operation.
package counter

import (
	"sync"

	"github.com/go-ripple/ripple/pkg/logging"
	"github.com/go-ripple/ripple/pkg/model"
)

// Counter owns one State, at most one background ticking process, and a
// listener supplied at construction. Every effective mutation notifies
// the listener synchronously before the mutating call returns; for ticks,
// before that tick completes.
//
// Invariant: State.AutoIncrementing is true exactly while one ticking
// goroutine is live for this counter.
type Counter struct {
	model *model.Model[State]
	task  model.BackgroundTask

	// lifecycle serializes start/stop/reset/dispose transitions so a
	// second ticking process can never be spawned while one is live.
	// Tick goroutines never take it, so Stop can wait for them safely.
	lifecycle sync.Mutex
}

// New creates a counter holding initial and notifying listener on every
// effective mutation. If initial.AutoIncrementing is set, the ticking
// process starts immediately to hold the state invariant.
func New(initial State, listener model.Listener[State]) *Counter {
	c := &Counter{
		model: model.New(initial, listener),
	}
	c.model.OnDispose(c.task.Stop)
	if initial.AutoIncrementing {
		c.task.Start(initial.AutoIncrementInterval.Duration(), c.tick)
	}
	return c
}

// tick performs one atomic increment-and-notify and reports whether the
// loop should continue.
func (c *Counter) tick() bool {
	c.Increment()
	return c.CurrentState().AutoIncrementing
}

// Increment adds one to the count. Always succeeds; wraparound is
// accepted.
func (c *Counter) Increment() {
	logging.Debugf("counter", "incrementing counter")
	c.model.Mutate(func(s *State) {
		s.Count++
	})
}

// Decrement subtracts one from the count. Always succeeds; there is no
// floor.
func (c *Counter) Decrement() {
	logging.Debugf("counter", "decrementing counter")
	c.model.Mutate(func(s *State) {
		s.Count--
	})
}

// Reset zeroes the count and stops any active auto-increment. This is a
// compound operation: the ticking process is cancelled first, so no
// in-flight tick can land after the reset, then the count reset and the
// flag clear commit as one mutation (one notification). After Reset
// returns the count is zero.
func (c *Counter) Reset() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	logging.Debugf("counter", "resetting counter")
	c.task.Stop()
	c.model.Mutate(func(s *State) {
		s.Count = 0
		s.AutoIncrementing = false
	})
}

// StartAutoIncrementing starts the background ticking process at the
// current interval. Idempotent: if a process is already live, this is a
// no-op and no second process is spawned.
func (c *Counter) StartAutoIncrementing() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	logging.Debugf("counter", "request to start auto incrementing")
	if c.task.IsRunning() {
		logging.Debugf("counter", "auto-increment task is already running, not starting another")
		return
	}
	interval := c.CurrentState().AutoIncrementInterval
	c.model.Mutate(func(s *State) {
		s.AutoIncrementing = true
	})
	c.task.Start(interval.Duration(), c.tick)
}

// StopAutoIncrementing clears the auto-increment flag and cancels the
// ticking process, waiting for its acknowledgement: after this returns,
// no further notifications from the ticking process occur. Idempotent.
func (c *Counter) StopAutoIncrementing() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	logging.Debugf("counter", "stopping auto incrementing")
	c.model.Mutate(func(s *State) {
		s.AutoIncrementing = false
	})
	c.task.Stop()
}

// CurrentState returns the current snapshot. No mutation, no
// notification.
func (c *Counter) CurrentState() State {
	return c.model.Snapshot()
}

// Sample returns n deterministic sample states for previews and test
// fixtures. It never mutates the counter.
func (c *Counter) Sample(n int) []State {
	return SampleStates(n)
}

// RenderDescription returns the canonical text form of state.
func (c *Counter) RenderDescription(state State) string {
	return RenderDescription(state)
}

// Dispose cancels any ticking process and releases the counter. No
// notification is delivered after disposal begins. Idempotent.
func (c *Counter) Dispose() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	logging.Debugf("counter", "disposing counter, stopping any background task")
	c.model.Dispose()
}

// Equal reports whether both counters currently hold the same state.
// Listener identity does not participate.
func (c *Counter) Equal(other *Counter) bool {
	if other == nil {
		return false
	}
	return c.model.Equal(other.model)
}

// String renders the current state in the canonical form.
func (c *Counter) String() string {
	return c.CurrentState().String()
}
