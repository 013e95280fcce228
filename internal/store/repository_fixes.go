package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"waylog/internal/logger"
	"waylog/models"
)

// Keys under which the location history lives in the key-value backend.
const (
	fixesKey        = "location_fixes"
	lastAcceptedKey = "location_last_accepted_at"
)

// fixRepository keeps the full fix list in memory and re-serializes it as a
// single JSON array on every append. The watermark of the last accepted fix
// is persisted separately as an RFC3339 scalar.
type fixRepository struct {
	kv     KVStorage
	logger *logger.Logger

	mu           sync.RWMutex
	fixes        []models.LocationFix
	lastAccepted time.Time
	hasWatermark bool
}

// NewFixRepository loads any persisted location history and returns a ready
// repository. A missing or undecodable persisted value means "no saved data":
// the repository starts empty and the condition is logged, never returned.
func NewFixRepository(ctx context.Context, kv KVStorage, logger *logger.Logger) FixRepository {
	r := &fixRepository{
		kv:     kv,
		logger: logger,
	}
	r.load(ctx)
	return r
}

func (r *fixRepository) load(ctx context.Context) {
	data, err := r.kv.Get(ctx, fixesKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		// first run
	case err != nil:
		r.logger.Warn().Err(err).
			Str("func", "fixRepository.load").
			Msg("failed to read persisted fixes, starting with empty history")
	default:
		var fixes []models.LocationFix
		if err := json.Unmarshal(data, &fixes); err != nil {
			r.logger.Warn().Err(err).
				Str("func", "fixRepository.load").
				Msg("undecodable persisted fixes, starting with empty history")
		} else {
			r.fixes = fixes
		}
	}

	raw, err := r.kv.Get(ctx, lastAcceptedKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
	case err != nil:
		r.logger.Warn().Err(err).
			Str("func", "fixRepository.load").
			Msg("failed to read last accepted watermark, treating as unset")
	default:
		at, err := time.Parse(time.RFC3339Nano, string(raw))
		if err != nil {
			r.logger.Warn().Err(err).
				Str("func", "fixRepository.load").
				Msg("undecodable last accepted watermark, treating as unset")
		} else {
			r.lastAccepted = at
			r.hasWatermark = true
		}
	}

	r.logger.Debug().
		Str("func", "fixRepository.load").
		Int("fix_count", len(r.fixes)).
		Bool("has_watermark", r.hasWatermark).
		Msg("loaded persisted location history")
}

// Append adds the fix to the history and persists the whole list. The
// in-memory state is only updated after the write succeeds, so a failed
// write leaves the previously persisted history intact.
func (r *fixRepository) Append(ctx context.Context, fix models.LocationFix) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]models.LocationFix, len(r.fixes), len(r.fixes)+1)
	copy(next, r.fixes)
	next = append(next, fix)

	payload, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode fixes: %w", err)
	}

	if err := r.kv.Put(ctx, fixesKey, payload); err != nil {
		return fmt.Errorf("failed to persist fixes: %w", err)
	}

	r.fixes = next
	return nil
}

// SetLastAccepted persists the debounce watermark.
func (r *fixRepository) SetLastAccepted(ctx context.Context, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.kv.Put(ctx, lastAcceptedKey, []byte(at.Format(time.RFC3339Nano))); err != nil {
		return fmt.Errorf("failed to persist last accepted watermark: %w", err)
	}

	r.lastAccepted = at
	r.hasWatermark = true
	return nil
}

// Clear removes the whole history and the watermark, so the next qualifying
// fix is treated as a first fix.
func (r *fixRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.kv.Delete(ctx, fixesKey); err != nil {
		return fmt.Errorf("failed to clear fixes: %w", err)
	}
	if err := r.kv.Delete(ctx, lastAcceptedKey); err != nil {
		return fmt.Errorf("failed to clear last accepted watermark: %w", err)
	}

	r.fixes = nil
	r.lastAccepted = time.Time{}
	r.hasWatermark = false
	return nil
}

// All returns a copy of the recorded history in append order.
func (r *fixRepository) All() []models.LocationFix {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LocationFix, len(r.fixes))
	copy(out, r.fixes)
	return out
}

// Count returns the number of recorded fixes.
func (r *fixRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.fixes)
}

// LastAccepted returns the debounce watermark and whether one exists.
func (r *fixRepository) LastAccepted() (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lastAccepted, r.hasWatermark
}
