package model

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/go-ripple/ripple/pkg/errors"
	"github.com/go-ripple/ripple/pkg/logging"
)

// BackgroundTask runs a tick callback on a fixed interval until the
// callback asks to stop or Stop is called.
//
// At most one run is live per task: Start cancels any previous run before
// spawning a new one. Stop waits for the goroutine's acknowledgement, so
// after Stop returns the tick callback will not run again. At most one
// tick may fire between a stop request and its acknowledgement.
type BackgroundTask struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Start launches the tick loop. The first tick fires after the first
// interval elapses, then the callback runs once per interval while it
// returns true. A zero interval ticks as fast as the scheduler allows,
// yielding between iterations rather than spinning.
func (t *BackgroundTask) Start(interval time.Duration, tick func() bool) {
	if tick == nil {
		return
	}
	t.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	t.mu.Lock()
	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	logging.Debugf("task", "starting background task with interval %v", interval)
	go t.run(ctx, done, interval, tick)
}

// Stop cancels the running tick loop, if any, and waits for it to exit.
// Idempotent.
func (t *BackgroundTask) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	done := t.done
	t.cancel = nil
	t.done = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// IsRunning reports whether the tick loop is currently live.
func (t *BackgroundTask) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func (t *BackgroundTask) run(ctx context.Context, done chan struct{}, interval time.Duration, tick func() bool) {
	defer close(done)
	defer errors.Recover("model.BackgroundTask")

	if interval <= 0 {
		for {
			select {
			case <-ctx.Done():
				logging.Debugf("task", "background task stopping as requested")
				return
			default:
			}
			// Yield so a zero interval never monopolizes the scheduler.
			runtime.Gosched()
			if !tick() {
				logging.Debugf("task", "background task stopping after tick")
				return
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logging.Debugf("task", "background task stopping as requested")
			return
		case <-ticker.C:
			if !tick() {
				logging.Debugf("task", "background task stopping after tick")
				return
			}
		}
	}
}
