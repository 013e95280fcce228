package workers

import (
	"context"
	"time"

	"waylog/internal/config"
	"waylog/internal/logger"
)

const defaultFeedInterval = 2 * time.Second

// feedWorker paces the simulated location feed: it calls Emit on every tick
// until the context is cancelled. The provider itself decides whether a
// reading is actually delivered, so the worker keeps ticking even while
// tracking is switched off.
type feedWorker struct {
	ctx  context.Context
	feed Feed
	cfg  config.ClientWorkers

	logger *logger.Logger
}

func NewFeedWorker(ctx context.Context, feed Feed, cfg config.ClientWorkers, logger *logger.Logger) Worker {
	return &feedWorker{
		ctx:    ctx,
		feed:   feed,
		cfg:    cfg,
		logger: logger,
	}
}

func (f *feedWorker) Run() {
	go f.loop()
}

func (f *feedWorker) loop() {
	interval := f.cfg.FeedInterval
	if interval <= 0 {
		interval = defaultFeedInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	f.logger.Info().Dur("interval", interval).Msg("simulated feed worker started")

	for {
		select {
		case <-f.ctx.Done():
			f.logger.Info().Msg("simulated feed worker stopped")
			return
		case <-ticker.C:
			f.feed.Emit()
		}
	}
}
