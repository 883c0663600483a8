package counter

import (
	"fmt"

	"github.com/go-ripple/ripple/pkg/logging"
	"github.com/go-ripple/ripple/pkg/model"
)

// ManualOnlyState is the state record of a counter without any background
// ticking. Value type: total equality and a stable structural hash, so it
// can serve as a mapping key.
type ManualOnlyState struct {
	Count int64
}

// String renders the canonical text form, identical for debug and
// display.
func (s ManualOnlyState) String() string {
	return fmt.Sprintf("ManualOnlyCounterState { count: %d }", s.Count)
}

// ManualOnlyCounter is a counter mutated only by explicit consumer calls.
// It also hosts the boundary coverage operations: CoverAll and
// TellFullName.
type ManualOnlyCounter struct {
	model *model.Model[ManualOnlyState]
}

// NewManualOnly creates a manual counter holding initial and notifying
// listener on every effective mutation.
func NewManualOnly(initial ManualOnlyState, listener model.Listener[ManualOnlyState]) *ManualOnlyCounter {
	return &ManualOnlyCounter{
		model: model.New(initial, listener),
	}
}

// Increment adds one to the count.
func (m *ManualOnlyCounter) Increment() {
	logging.Debugf("counter", "incrementing manual counter")
	m.model.Mutate(func(s *ManualOnlyState) {
		s.Count++
	})
}

// Decrement subtracts one from the count.
func (m *ManualOnlyCounter) Decrement() {
	m.model.Mutate(func(s *ManualOnlyState) {
		s.Count--
	})
}

// Reset zeroes the count.
func (m *ManualOnlyCounter) Reset() {
	m.model.Mutate(func(s *ManualOnlyState) {
		s.Count = 0
	})
}

// CurrentState returns the current snapshot.
func (m *ManualOnlyCounter) CurrentState() ManualOnlyState {
	return m.model.Snapshot()
}

// TellFullName joins a first and last name with a single space.
func (m *ManualOnlyCounter) TellFullName(firstName, lastName string) string {
	return fmt.Sprintf("%s %s", firstName, lastName)
}

// Dispose releases the counter. Idempotent.
func (m *ManualOnlyCounter) Dispose() {
	m.model.Dispose()
}

// Equal reports whether both counters currently hold the same state.
func (m *ManualOnlyCounter) Equal(other *ManualOnlyCounter) bool {
	if other == nil {
		return false
	}
	return m.model.Equal(other.model)
}

// String renders the current state in the canonical form.
func (m *ManualOnlyCounter) String() string {
	return m.CurrentState().String()
}
