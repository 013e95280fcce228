package service

import (
	"context"
	"fmt"
	"time"

	"waylog/internal/adapter"
	"waylog/internal/logger"
	"waylog/internal/store"
	"waylog/internal/utils"
	"waylog/models"
)

type clientUploadService struct {
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	uuid     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientUploadService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, generator *utils.UUIDGenerator, logger *logger.Logger) ClientUploadService {
	return &clientUploadService{
		storages: storages,
		adapter:  serverAdapter,
		uuid:     generator,
		logger:   logger,
	}
}

func (u *clientUploadService) Create(ctx context.Context, draft models.UploadDraft) (models.UploadEntry, error) {
	if draft.Empty() {
		return models.UploadEntry{}, ErrEmptyEntry
	}

	entry := models.UploadEntry{
		ID:        u.uuid.Generate(),
		Note:      draft.Note,
		Timestamp: time.Now().UTC(),
	}

	saved, err := u.storages.Uploads.Add(ctx, entry, draft.Image, draft.Voice)
	if err != nil {
		return models.UploadEntry{}, fmt.Errorf("save upload entry to local store: %w", err)
	}

	// Local persistence is the source of truth. The backend post is
	// best-effort and a failure never rolls the local entry back.
	if _, err = u.adapter.UploadEntry(ctx, saved, draft.Image, draft.Voice); err != nil {
		u.logger.Warn().
			Str("func", "clientUploadService.Create").
			Str("id", saved.ID).
			Err(err).
			Msg("backend upload failed, entry kept locally")
	}

	return saved, nil
}

func (u *clientUploadService) List() []models.UploadEntry {
	return u.storages.Uploads.All()
}

func (u *clientUploadService) Delete(ctx context.Context, id string) error {
	if err := u.storages.Uploads.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete upload entry: %w", err)
	}

	return nil
}

func (u *clientUploadService) ClearAll(ctx context.Context) error {
	if err := u.storages.Uploads.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear upload entries: %w", err)
	}

	return nil
}

func (u *clientUploadService) Image(id string) ([]byte, error) {
	data, err := u.storages.Blobs.ReadImage(id)
	if err != nil {
		return nil, fmt.Errorf("load image blob: %w", err)
	}

	return data, nil
}

func (u *clientUploadService) Voice(id string) ([]byte, error) {
	data, err := u.storages.Blobs.ReadVoice(id)
	if err != nil {
		return nil, fmt.Errorf("load voice blob: %w", err)
	}

	return data, nil
}
