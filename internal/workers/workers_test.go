// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"waylog/internal/config"
	"waylog/internal/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic with no workers registered
	NewWorkers().Run()
	(&Workers{}).Run()
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

// countingFeed records Emit calls so tests can observe worker ticks.
type countingFeed struct {
	mu    sync.Mutex
	calls int
}

func (c *countingFeed) Emit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
}

func (c *countingFeed) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestFeedWorker_EmitsOnTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := &countingFeed{}
	w := NewFeedWorker(ctx, feed, config.ClientWorkers{FeedInterval: 5 * time.Millisecond}, logger.Nop())

	w.Run()

	require.Eventually(t, func() bool { return feed.count() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestFeedWorker_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	feed := &countingFeed{}
	w := NewFeedWorker(ctx, feed, config.ClientWorkers{FeedInterval: time.Millisecond}, logger.Nop())
	w.Run()

	require.Eventually(t, func() bool { return feed.count() >= 1 }, time.Second, time.Millisecond)

	// goleak in TestMain verifies the loop goroutine exits after cancellation.
	cancel()
}

func TestFeedWorker_ZeroIntervalFallsBackToDefault(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	w := NewFeedWorker(ctx, &countingFeed{}, config.ClientWorkers{}, logger.Nop())
	w.Run()

	// The default interval guards time.NewTicker against a zero period.
	time.Sleep(10 * time.Millisecond)
	cancel()
}
