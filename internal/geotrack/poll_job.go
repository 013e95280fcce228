package geotrack

import (
	"context"
	"sync"
	"time"

	"waylog/internal/config"
)

// pollJob periodically asks the provider for a one-shot reading so a
// stationary device still produces journal entries between significant
// change events. The job is idle until Start is called.
type pollJob struct {
	request func()

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newPollJob(request func()) *pollJob {
	return &pollJob{request: request}
}

// Start stops any previously running job, then launches a background
// goroutine that calls request every interval. If interval is zero or
// negative it defaults to the built-in poll interval. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *pollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.request()
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running
// (no-op in that case).
func (j *pollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
