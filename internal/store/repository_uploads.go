package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"waylog/internal/logger"
	"waylog/models"
)

// Key under which the upload record list lives in the key-value backend.
const uploadEntriesKey = "upload_entries"

// uploadRepository keeps upload metadata in memory, re-serializing the full
// list on every mutation. Binary payloads are delegated to the side-car
// blob store and referenced through the HasImage/HasVoice flags.
type uploadRepository struct {
	kv     KVStorage
	blobs  BlobStorage
	logger *logger.Logger

	mu      sync.RWMutex
	entries []models.UploadEntry
}

// NewUploadRepository loads any persisted upload records and returns a ready
// repository. After decoding, every entry's blob flags are re-checked against
// the blob directory: a flag whose file is gone is flipped to false so the
// record degrades to a text-only entry instead of failing.
func NewUploadRepository(ctx context.Context, kv KVStorage, blobs BlobStorage, logger *logger.Logger) UploadRepository {
	r := &uploadRepository{
		kv:     kv,
		blobs:  blobs,
		logger: logger,
	}
	r.load(ctx)
	return r
}

func (r *uploadRepository) load(ctx context.Context) {
	data, err := r.kv.Get(ctx, uploadEntriesKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		// first run
		return
	case err != nil:
		r.logger.Warn().Err(err).
			Str("func", "uploadRepository.load").
			Msg("failed to read persisted upload entries, starting with empty list")
		return
	}

	var entries []models.UploadEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		r.logger.Warn().Err(err).
			Str("func", "uploadRepository.load").
			Msg("undecodable persisted upload entries, starting with empty list")
		return
	}

	for i := range entries {
		if entries[i].HasImage && !r.blobs.HasImage(entries[i].ID) {
			r.logger.Warn().
				Str("func", "uploadRepository.load").
				Str("id", entries[i].ID).
				Msg("image blob missing for upload entry, dropping flag")
			entries[i].HasImage = false
		}
		if entries[i].HasVoice && !r.blobs.HasVoice(entries[i].ID) {
			r.logger.Warn().
				Str("func", "uploadRepository.load").
				Str("id", entries[i].ID).
				Msg("voice blob missing for upload entry, dropping flag")
			entries[i].HasVoice = false
		}
	}

	r.entries = entries
	r.logger.Debug().
		Str("func", "uploadRepository.load").
		Int("entry_count", len(r.entries)).
		Msg("loaded persisted upload entries")
}

// Add writes the blob payloads first, then appends the metadata and persists
// the whole list. The stored entry's blob flags are derived from the payloads
// actually written; the finalized entry is returned.
func (r *uploadRepository) Add(ctx context.Context, entry models.UploadEntry, image []byte, voice []byte) (models.UploadEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.HasImage = len(image) > 0
	entry.HasVoice = len(voice) > 0

	if entry.HasImage {
		if err := r.blobs.WriteImage(entry.ID, image); err != nil {
			return models.UploadEntry{}, fmt.Errorf("failed to write image blob (id=%s): %w", entry.ID, err)
		}
	}
	if entry.HasVoice {
		if err := r.blobs.WriteVoice(entry.ID, voice); err != nil {
			return models.UploadEntry{}, fmt.Errorf("failed to write voice blob (id=%s): %w", entry.ID, err)
		}
	}

	next := make([]models.UploadEntry, len(r.entries), len(r.entries)+1)
	copy(next, r.entries)
	next = append(next, entry)

	if err := r.persist(ctx, next); err != nil {
		return models.UploadEntry{}, err
	}

	r.entries = next
	return entry, nil
}

// Delete removes the record and its blobs. A missing blob file is tolerated.
func (r *uploadRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.entries {
		if r.entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUploadEntryNotFound
	}

	if err := r.blobs.Remove(id); err != nil {
		r.logger.Warn().Err(err).
			Str("func", "uploadRepository.Delete").
			Str("id", id).
			Msg("failed to remove blobs for upload entry")
	}

	next := make([]models.UploadEntry, 0, len(r.entries)-1)
	next = append(next, r.entries[:idx]...)
	next = append(next, r.entries[idx+1:]...)

	if err := r.persist(ctx, next); err != nil {
		return err
	}

	r.entries = next
	return nil
}

// ClearAll removes every record, its blobs, and the persisted list itself.
func (r *uploadRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if err := r.blobs.Remove(entry.ID); err != nil {
			r.logger.Warn().Err(err).
				Str("func", "uploadRepository.ClearAll").
				Str("id", entry.ID).
				Msg("failed to remove blobs for upload entry")
		}
	}

	if err := r.kv.Delete(ctx, uploadEntriesKey); err != nil {
		return fmt.Errorf("failed to clear upload entries: %w", err)
	}

	r.entries = nil
	return nil
}

// All returns a copy of the recorded entries in append order.
func (r *uploadRepository) All() []models.UploadEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.UploadEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Get returns the entry with the given ID.
func (r *uploadRepository) Get(id string) (models.UploadEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return models.UploadEntry{}, ErrUploadEntryNotFound
}

func (r *uploadRepository) persist(ctx context.Context, entries []models.UploadEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode upload entries: %w", err)
	}

	if err := r.kv.Put(ctx, uploadEntriesKey, payload); err != nil {
		return fmt.Errorf("failed to persist upload entries: %w", err)
	}

	return nil
}
