package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"waylog/internal/logger"
)

type kvStorage struct {
	*DB
	logger *logger.Logger
}

func NewKVStorage(db *DB, logger *logger.Logger) KVStorage {
	return &kvStorage{
		DB:     db,
		logger: logger,
	}
}

func (s *kvStorage) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var value []byte
	row := s.DB.QueryRowContext(ctx, getKVPair, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}

		log.Err(err).
			Str("func", "kvStorage.Get").
			Str("key", key).
			Msg("failed to scan kv row")
		return nil, fmt.Errorf("failed to get value (key=%s): %w", key, err)
	}

	return value, nil
}

func (s *kvStorage) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, upsertKVPair, key, value)
	if err != nil {
		log.Err(err).
			Str("func", "kvStorage.Put").
			Str("key", key).
			Msg("failed to execute upsert for kv pair")
		return fmt.Errorf("failed to put value (key=%s): %w", key, err)
	}

	return nil
}

func (s *kvStorage) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	// deleting an absent key is not an error
	_, err := s.DB.ExecContext(ctx, deleteKVPair, key)
	if err != nil {
		log.Err(err).
			Str("func", "kvStorage.Delete").
			Str("key", key).
			Msg("failed to execute delete for kv pair")
		return fmt.Errorf("failed to delete value (key=%s): %w", key, err)
	}

	return nil
}
