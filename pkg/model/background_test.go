package model

import (
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it returns true or the deadline expires.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

func TestBackgroundTaskTicks(t *testing.T) {
	var task BackgroundTask
	var ticks atomic.Int64

	task.Start(time.Millisecond, func() bool {
		ticks.Add(1)
		return true
	})
	defer task.Stop()

	waitFor(t, 5*time.Second, func() bool { return ticks.Load() >= 3 },
		"expected at least 3 ticks")

	if !task.IsRunning() {
		t.Error("expected task to be running")
	}
}

func TestStopWaitsForQuiescence(t *testing.T) {
	var task BackgroundTask
	var ticks atomic.Int64

	task.Start(time.Millisecond, func() bool {
		ticks.Add(1)
		return true
	})
	waitFor(t, 5*time.Second, func() bool { return ticks.Load() >= 1 },
		"expected at least 1 tick before stopping")

	task.Stop()
	after := ticks.Load()

	time.Sleep(20 * time.Millisecond)
	if got := ticks.Load(); got != after {
		t.Errorf("expected no ticks after Stop returned, got %d more", got-after)
	}
	if task.IsRunning() {
		t.Error("expected task to be stopped")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	var task BackgroundTask

	// Stop without a start is a no-op.
	task.Stop()

	task.Start(time.Millisecond, func() bool { return true })
	task.Stop()
	task.Stop()

	if task.IsRunning() {
		t.Error("expected task to be stopped")
	}
}

func TestStartReplacesPreviousRun(t *testing.T) {
	var task BackgroundTask
	var first, second atomic.Int64

	task.Start(time.Millisecond, func() bool {
		first.Add(1)
		return true
	})
	task.Start(time.Millisecond, func() bool {
		second.Add(1)
		return true
	})
	defer task.Stop()

	// Start waits for the previous run to exit, so the first callback is
	// frozen from here on.
	frozen := first.Load()
	waitFor(t, 5*time.Second, func() bool { return second.Load() >= 2 },
		"expected replacement run to tick")

	if got := first.Load(); got != frozen {
		t.Errorf("expected first run to stay frozen at %d ticks, got %d", frozen, got)
	}
}

func TestTickFalseStopsLoop(t *testing.T) {
	var task BackgroundTask
	var ticks atomic.Int64

	task.Start(time.Millisecond, func() bool {
		return ticks.Add(1) < 3
	})

	waitFor(t, 5*time.Second, func() bool { return !task.IsRunning() },
		"expected loop to exit after tick returned false")

	if got := ticks.Load(); got != 3 {
		t.Errorf("expected exactly 3 ticks, got %d", got)
	}
}

func TestZeroIntervalDoesNotSpin(t *testing.T) {
	var task BackgroundTask
	var ticks atomic.Int64

	task.Start(0, func() bool {
		return ticks.Add(1) < 1000
	})

	waitFor(t, 5*time.Second, func() bool { return !task.IsRunning() },
		"expected zero-interval loop to finish")

	if got := ticks.Load(); got != 1000 {
		t.Errorf("expected exactly 1000 ticks, got %d", got)
	}
}

func TestNilTickIsIgnored(t *testing.T) {
	var task BackgroundTask
	task.Start(time.Millisecond, nil)
	if task.IsRunning() {
		t.Error("expected no run for a nil tick callback")
	}
}

func TestIsRunningLifecycle(t *testing.T) {
	var task BackgroundTask

	if task.IsRunning() {
		t.Error("expected new task not to be running")
	}

	task.Start(time.Millisecond, func() bool { return true })
	if !task.IsRunning() {
		t.Error("expected started task to be running")
	}

	task.Stop()
	if task.IsRunning() {
		t.Error("expected stopped task not to be running")
	}
}
