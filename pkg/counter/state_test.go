package counter

import "testing"

func TestRenderDescription(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{
			name: "default",
			state: State{
				Count:                 0,
				AutoIncrementing:      true,
				AutoIncrementInterval: NewInterval(1000),
			},
			want: "CounterState { count: 0, is_auto_incrementing: true, auto_increment_interval_ms: Interval { ms: 1000 } }",
		},
		{
			name: "negative count",
			state: State{
				Count:                 -5,
				AutoIncrementing:      false,
				AutoIncrementInterval: NewInterval(500),
			},
			want: "CounterState { count: -5, is_auto_incrementing: false, auto_increment_interval_ms: Interval { ms: 500 } }",
		},
		{
			name: "zero interval",
			state: State{
				Count:                 7,
				AutoIncrementing:      false,
				AutoIncrementInterval: NewInterval(0),
			},
			want: "CounterState { count: 7, is_auto_incrementing: false, auto_increment_interval_ms: Interval { ms: 0 } }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderDescription(tt.state); got != tt.want {
				t.Errorf("RenderDescription() = %q, want %q", got, tt.want)
			}
			// Debug and display forms are identical.
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	if s.Count != 0 {
		t.Errorf("expected default count 0, got %d", s.Count)
	}
	if !s.AutoIncrementing {
		t.Error("expected default state to auto-increment")
	}
	if s.AutoIncrementInterval.Ms() != 1000 {
		t.Errorf("expected default interval 1000ms, got %d", s.AutoIncrementInterval.Ms())
	}
}

func TestSampleStatesDeterministic(t *testing.T) {
	a := SampleStates(10)
	b := SampleStates(10)

	if len(a) != len(b) {
		t.Fatalf("expected equal lengths, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("sample %d differs between calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSampleStatesDistinct(t *testing.T) {
	states := SampleStates(10)
	seen := make(map[State]int, len(states))
	for i, s := range states {
		if j, dup := seen[s]; dup {
			t.Errorf("samples %d and %d are identical: %v", j, i, s)
		}
		seen[s] = i
	}
}

func TestSampleStatesLength(t *testing.T) {
	for _, n := range []int{0, 1, 5, 12, 25} {
		if got := len(SampleStates(n)); got != n {
			t.Errorf("SampleStates(%d) returned %d states", n, got)
		}
	}
	if got := len(SampleStates(-3)); got != 0 {
		t.Errorf("SampleStates(-3) returned %d states, want 0", got)
	}
}

func TestStateSamplesCoverBothFlags(t *testing.T) {
	var ticking, idle bool
	for _, s := range StateSamples() {
		if s.AutoIncrementing {
			ticking = true
		} else {
			idle = true
		}
	}
	if !ticking || !idle {
		t.Error("expected samples with the flag both set and clear")
	}
}

func TestStateIsMapKey(t *testing.T) {
	// Value semantics: structurally equal states are the same key.
	m := map[State]string{}
	m[State{Count: 1, AutoIncrementing: true, AutoIncrementInterval: NewInterval(500)}] = "a"
	m[State{Count: 1, AutoIncrementing: true, AutoIncrementInterval: NewInterval(500)}] = "b"

	if len(m) != 1 {
		t.Errorf("expected equal states to collapse to one key, got %d", len(m))
	}
}
