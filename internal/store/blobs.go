package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"waylog/internal/config"
	"waylog/internal/logger"
)

// blobStore keeps binary payloads as plain files in a single directory,
// named by record ID: `<id>.jpg` for images, `voice_note_<id>.m4a` for
// voice clips.
type blobStore struct {
	dir    string
	logger *logger.Logger
}

// NewBlobStore creates the blob directory if needed and returns the store.
func NewBlobStore(cfg config.ClientFiles, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(cfg.BlobDir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}

	return &blobStore{
		dir:    cfg.BlobDir,
		logger: logger,
	}, nil
}

func (b *blobStore) imagePath(id string) string {
	return filepath.Join(b.dir, id+".jpg")
}

func (b *blobStore) voicePath(id string) string {
	return filepath.Join(b.dir, "voice_note_"+id+".m4a")
}

func (b *blobStore) WriteImage(id string, data []byte) error {
	if err := os.WriteFile(b.imagePath(id), data, 0o600); err != nil {
		return fmt.Errorf("write image blob: %w", err)
	}
	return nil
}

func (b *blobStore) WriteVoice(id string, data []byte) error {
	if err := os.WriteFile(b.voicePath(id), data, 0o600); err != nil {
		return fmt.Errorf("write voice blob: %w", err)
	}
	return nil
}

func (b *blobStore) ReadImage(id string) ([]byte, error) {
	data, err := os.ReadFile(b.imagePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("read image blob: %w", err)
	}
	return data, nil
}

func (b *blobStore) ReadVoice(id string) ([]byte, error) {
	data, err := os.ReadFile(b.voicePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("read voice blob: %w", err)
	}
	return data, nil
}

func (b *blobStore) HasImage(id string) bool {
	_, err := os.Stat(b.imagePath(id))
	return err == nil
}

func (b *blobStore) HasVoice(id string) bool {
	_, err := os.Stat(b.voicePath(id))
	return err == nil
}

// Remove deletes both blob files for the record. Absent files are tolerated.
func (b *blobStore) Remove(id string) error {
	var errs []error
	for _, path := range []string{b.imagePath(id), b.voicePath(id)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("remove blob %s: %w", filepath.Base(path), err))
		}
	}
	return errors.Join(errs...)
}
