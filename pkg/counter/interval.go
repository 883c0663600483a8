package counter

import (
	"fmt"
	"time"

	"github.com/go-ripple/ripple/pkg/samples"
)

// Interval wraps a non-negative duration in milliseconds. Non-negativity
// is guaranteed by the unsigned representation; zero is allowed and means
// "as fast as the scheduler allows" when used as a tick interval.
//
// Interval is pure data with value equality, usable as a map key.
type Interval struct {
	ms uint64
}

// NewInterval creates an interval of ms milliseconds.
func NewInterval(ms uint64) Interval {
	return Interval{ms: ms}
}

// DefaultInterval returns the default auto-increment interval of one
// second.
func DefaultInterval() Interval {
	return Interval{ms: 1000}
}

// Ms returns the interval in milliseconds.
func (i Interval) Ms() uint64 {
	return i.ms
}

// Duration converts the interval to a time.Duration.
func (i Interval) Duration() time.Duration {
	return time.Duration(i.ms) * time.Millisecond
}

// String renders the canonical form, identical for debug and display:
//
//	Interval { ms: <ms> }
func (i Interval) String() string {
	return fmt.Sprintf("Interval { ms: %d }", i.ms)
}

// IntervalSamples is the samples.Provider for Interval.
func IntervalSamples() []Interval {
	return []Interval{NewInterval(500), NewInterval(1000)}
}

var _ samples.Provider[Interval] = IntervalSamples
