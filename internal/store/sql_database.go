package store

import (
	"database/sql"

	"waylog/internal/logger"
	"waylog/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
