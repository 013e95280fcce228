package store

import (
	"context"
	"time"

	"waylog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KVStorage is the low-level durable key-value backend. Every persisted
// record of the agent lives under an independent key.
type KVStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// FixRepository is the durable location history repository. Writes go
// through to the key-value backend; reads are served from memory.
type FixRepository interface {
	Append(ctx context.Context, fix models.LocationFix) error
	SetLastAccepted(ctx context.Context, at time.Time) error
	Clear(ctx context.Context) error
	All() []models.LocationFix
	Count() int
	LastAccepted() (time.Time, bool)
}

// UploadRepository is the durable upload record repository. Blob payloads
// are written to the side-car store before the metadata list is persisted.
type UploadRepository interface {
	Add(ctx context.Context, entry models.UploadEntry, image []byte, voice []byte) (models.UploadEntry, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	All() []models.UploadEntry
	Get(id string) (models.UploadEntry, error)
}

// BlobStorage is the side-car file store for image and voice payloads,
// keyed by record ID.
type BlobStorage interface {
	WriteImage(id string, data []byte) error
	WriteVoice(id string, data []byte) error
	ReadImage(id string) ([]byte, error)
	ReadVoice(id string) ([]byte, error)
	HasImage(id string) bool
	HasVoice(id string) bool
	Remove(id string) error
}
