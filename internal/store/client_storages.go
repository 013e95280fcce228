package store

import (
	"context"
	"fmt"

	"waylog/internal/config"
	"waylog/internal/logger"
)

// ClientStorages groups all client-side storage backends into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// KV is the low-level durable key-value backend.
	KV KVStorage

	// Fixes is the durable location history repository.
	Fixes FixRepository

	// Uploads is the durable upload record repository.
	Uploads UploadRepository

	// Blobs is the side-car file store for image and voice payloads.
	Blobs BlobStorage
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Creates the blob directory and loads the persisted location history
//     and upload records into their repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewBlobStore(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("blob store error: %w", err)
	}

	kv := NewKVStorage(db, logger)

	return &ClientStorages{
		KV:      kv,
		Fixes:   NewFixRepository(ctx, kv, logger),
		Uploads: NewUploadRepository(ctx, kv, blobs, logger),
		Blobs:   blobs,
	}, nil
}
