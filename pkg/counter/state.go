package counter

import (
	"fmt"

	"github.com/go-ripple/ripple/pkg/samples"
)

// State is the counter's state record. It is a value type: equality and
// map-key hashing are structural, so two states with the same fields are
// interchangeable.
type State struct {
	// Count is the counter value. It is unbounded in sign and magnitude
	// within int64; wraparound is accepted behavior.
	Count int64
	// AutoIncrementing is true while a background ticking process is
	// active on the owning counter.
	AutoIncrementing bool
	// AutoIncrementInterval is the delay between automatic increments.
	AutoIncrementInterval Interval
}

// DefaultState returns the initial state a consumer gets without
// configuration: zero count, auto-incrementing enabled at the default
// interval.
func DefaultState() State {
	return State{
		Count:                 0,
		AutoIncrementing:      true,
		AutoIncrementInterval: DefaultInterval(),
	}
}

// String renders the canonical text form. The format is byte-stable
// across all consumer languages, and the debug and display forms are
// identical:
//
//	CounterState { count: <i64>, is_auto_incrementing: <true|false>, auto_increment_interval_ms: Interval { ms: <u64> } }
func (s State) String() string {
	return fmt.Sprintf(
		"CounterState { count: %d, is_auto_incrementing: %t, auto_increment_interval_ms: %s }",
		s.Count, s.AutoIncrementing, s.AutoIncrementInterval,
	)
}

// RenderDescription returns the canonical text form of s. There is no
// richer display rendering; this is the one format.
func RenderDescription(s State) string {
	return s.String()
}

// StateSamples is the samples.Provider for State: the cross product of
// the per-field samples, deterministic and pairwise distinct.
func StateSamples() []State {
	return samples.Cross3(samples.Int64s(), samples.Bool(), IntervalSamples(),
		func(count int64, auto bool, interval Interval) State {
			return State{
				Count:                 count,
				AutoIncrementing:      auto,
				AutoIncrementInterval: interval,
			}
		})
}

// SampleStates returns exactly n deterministic sample states. The first
// len(StateSamples()) values are pairwise distinct; beyond that the cross
// product repeats with shifted counts.
func SampleStates(n int) []State {
	if n <= 0 {
		return []State{}
	}
	base := StateSamples()
	out := make([]State, 0, n)
	for i := 0; i < n; i++ {
		s := base[i%len(base)]
		s.Count += int64(i / len(base))
		out = append(out, s)
	}
	return out
}
