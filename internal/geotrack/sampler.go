package geotrack

import (
	"context"
	"fmt"
	"sync"
	"time"

	"waylog/internal/config"
	"waylog/internal/logger"
	"waylog/internal/utils"
	"waylog/models"
)

// Sampler owns the recording policy of the location journal. Every entry
// point takes the same mutex, which keeps the single-threaded event model of
// the host platform: one callback or user action mutates state at a time.
type Sampler struct {
	provider Provider
	fixes    FixStore
	uuid     *utils.UUIDGenerator
	logger   *logger.Logger

	minFixInterval     time.Duration
	maxAccuracy        float64
	pollInterval       time.Duration
	significantChanges bool

	poll *pollJob

	mu            sync.Mutex
	enabled       bool
	sampling      bool
	authorization models.Authorization
	lastFix       *models.LocationFix

	subMu       sync.Mutex
	subscribers map[int]func(Status)
	nextSubID   int
}

// NewSampler builds a Sampler over the given provider and fix store.
// The authorization mirror is seeded from the provider, and the last
// persisted fix (if any) becomes the initial LastFix of the observable
// status. Non-positive policy values fall back to the built-in defaults.
func NewSampler(cfg config.ClientSampler, provider Provider, fixes FixStore, generator *utils.UUIDGenerator, log *logger.Logger) *Sampler {
	minFixInterval := cfg.MinFixInterval
	if minFixInterval <= 0 {
		minFixInterval = config.DefaultMinFixInterval
	}
	maxAccuracy := cfg.MaxAccuracy
	if maxAccuracy <= 0 {
		maxAccuracy = config.DefaultMaxAccuracy
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = config.DefaultPollInterval
	}

	s := &Sampler{
		provider:           provider,
		fixes:              fixes,
		uuid:               generator,
		logger:             log,
		minFixInterval:     minFixInterval,
		maxAccuracy:        maxAccuracy,
		pollInterval:       pollInterval,
		significantChanges: !cfg.DisableSignificantChanges,
		authorization:      provider.Authorization(),
		subscribers:        make(map[int]func(Status)),
	}
	s.poll = newPollJob(provider.RequestLocation)

	if history := fixes.All(); len(history) > 0 {
		last := history[len(history)-1]
		s.lastFix = &last
	}

	return s
}

// SetEnabled turns sampling on or off. Enabling without authorization records
// the intent and asks the provider for permission instead of starting; the
// AuthorizationChanged callback completes the start once access is granted.
// Disabling stops continuous updates, significant-change monitoring and the
// poll timer before returning, so readings delivered afterwards are dropped.
func (s *Sampler) SetEnabled(enabled bool) {
	s.mu.Lock()

	if enabled == s.enabled {
		s.mu.Unlock()
		return
	}

	if !enabled {
		s.enabled = false
		s.stopSamplingLocked()
		st := s.statusLocked()
		s.mu.Unlock()
		s.notify(st)
		return
	}

	s.enabled = true
	if !s.authorization.Authorized() {
		s.logger.Info().
			Str("func", "Sampler.SetEnabled").
			Stringer("authorization", s.authorization).
			Msg("tracking requested without authorization, asking for permission")
		s.provider.RequestWhenInUseAuthorization()
		st := s.statusLocked()
		s.mu.Unlock()
		s.notify(st)
		return
	}

	s.startSamplingLocked()
	st := s.statusLocked()
	s.mu.Unlock()
	s.notify(st)
}

// FixReceived is the host callback for every reading the provider delivers,
// both continuous updates and one-shot poll responses. Readings that arrive
// while the sampler is not running are dropped. A reading survives when its
// accuracy is within [0, MaxAccuracy) and at least MinFixInterval has passed
// since the previously accepted reading; the first reading ever is accepted
// unconditionally. Store failures are logged and sampling continues.
func (s *Sampler) FixReceived(fix Fix) {
	s.mu.Lock()

	if !s.sampling {
		s.mu.Unlock()
		return
	}

	if fix.Accuracy < 0 || fix.Accuracy >= s.maxAccuracy {
		s.logger.Debug().
			Str("func", "Sampler.FixReceived").
			Float64("accuracy", fix.Accuracy).
			Msg("fix rejected by accuracy filter")
		s.mu.Unlock()
		return
	}

	if watermark, ok := s.fixes.LastAccepted(); ok && fix.Timestamp.Sub(watermark) < s.minFixInterval {
		s.logger.Debug().
			Str("func", "Sampler.FixReceived").
			Time("watermark", watermark).
			Time("fix_timestamp", fix.Timestamp).
			Msg("fix rejected by debounce window")
		s.mu.Unlock()
		return
	}

	accepted := models.LocationFix{
		ID:        s.uuid.Generate(),
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Timestamp: fix.Timestamp,
		Accuracy:  fix.Accuracy,
	}

	ctx := s.logger.WithContext(context.Background())
	if err := s.fixes.Append(ctx, accepted); err != nil {
		s.logger.Err(err).
			Str("func", "Sampler.FixReceived").
			Str("id", accepted.ID).
			Msg("failed to persist accepted fix")
		s.mu.Unlock()
		return
	}
	if err := s.fixes.SetLastAccepted(ctx, fix.Timestamp); err != nil {
		s.logger.Err(err).
			Str("func", "Sampler.FixReceived").
			Msg("failed to persist debounce watermark")
	}

	s.lastFix = &accepted
	st := s.statusLocked()
	s.mu.Unlock()
	s.notify(st)
}

// AuthorizationChanged is the host callback for permission transitions. A
// grant while tracking intent is recorded starts sampling; Denied or
// Restricted forces the sampler off so the journal state reflects the
// revocation.
func (s *Sampler) AuthorizationChanged(state models.Authorization) {
	s.mu.Lock()

	previous := s.authorization
	s.authorization = state

	s.logger.Info().
		Str("func", "Sampler.AuthorizationChanged").
		Stringer("from", previous).
		Stringer("to", state).
		Msg("location authorization changed")

	switch {
	case state.Authorized() && s.enabled && !s.sampling:
		s.startSamplingLocked()
	case state.Blocked():
		s.enabled = false
		s.stopSamplingLocked()
	}

	st := s.statusLocked()
	s.mu.Unlock()
	s.notify(st)
}

// ProviderError is the host callback for provider failures. Failures are not
// fatal: sampling continues and the next delivery is processed normally.
func (s *Sampler) ProviderError(err error) {
	s.logger.Warn().
		Err(err).
		Str("func", "Sampler.ProviderError").
		Msg("location provider reported an error")
}

// ClearHistory wipes the recorded journal together with the debounce
// watermark, so the next qualifying reading is accepted unconditionally.
func (s *Sampler) ClearHistory() error {
	s.mu.Lock()

	ctx := s.logger.WithContext(context.Background())
	if err := s.fixes.Clear(ctx); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to clear fix history: %w", err)
	}

	s.lastFix = nil
	st := s.statusLocked()
	s.mu.Unlock()
	s.notify(st)

	return nil
}

// startSamplingLocked starts continuous updates, significant-change
// monitoring and the poll timer. Callers must hold s.mu.
func (s *Sampler) startSamplingLocked() {
	if s.sampling {
		return
	}
	s.sampling = true

	s.provider.StartUpdates()
	if s.significantChanges {
		s.provider.StartMonitoringSignificantChanges()
	}
	s.poll.Start(context.Background(), s.pollInterval)
}

// stopSamplingLocked is the inverse of startSamplingLocked. Callers must
// hold s.mu.
func (s *Sampler) stopSamplingLocked() {
	if !s.sampling {
		return
	}
	s.sampling = false

	s.provider.StopUpdates()
	if s.significantChanges {
		s.provider.StopMonitoringSignificantChanges()
	}
	s.poll.Stop()
}
