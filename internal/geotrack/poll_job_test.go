package geotrack

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestPollJob_TicksRequest(t *testing.T) {
	var calls atomic.Int64
	job := newPollJob(func() { calls.Add(1) })

	// 10ms interval over 55ms should produce around 5 ticks.
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several ticks, got %d", got)
}

func TestPollJob_StopEndsTicks(t *testing.T) {
	var calls atomic.Int64
	job := newPollJob(func() { calls.Add(1) })

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, after, calls.Load())
}

func TestPollJob_StopBeforeStart_NoPanic(t *testing.T) {
	job := newPollJob(func() {})

	assert.NotPanics(t, func() { job.Stop() })
}

func TestPollJob_DoubleStop_NoPanic(t *testing.T) {
	job := newPollJob(func() {})
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestPollJob_RestartReplacesPreviousJob(t *testing.T) {
	var calls atomic.Int64
	job := newPollJob(func() { calls.Add(1) })

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(2))
}

func TestPollJob_ContextCancelEndsTicks(t *testing.T) {
	var calls atomic.Int64
	job := newPollJob(func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load())

	// Stop still cleans up the goroutine bookkeeping.
	job.Stop()
}

func TestPollJob_NonPositiveIntervalDefaults(t *testing.T) {
	job := newPollJob(func() {})

	assert.NotPanics(t, func() {
		job.Start(context.Background(), 0)
		job.Stop()
	})
}
