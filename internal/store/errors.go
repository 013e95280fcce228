package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when a key-value lookup targets a key that
	// has never been written or has been deleted.
	ErrKeyNotFound = errors.New("key not found")

	// ErrBlobNotFound is returned when a blob read targets a record ID whose
	// side-car file does not exist in the blob directory.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrUploadEntryNotFound is returned when an operation targets an upload
	// record (identified by its ID) that is not present in the local store.
	ErrUploadEntryNotFound = errors.New("upload entry was not found")
)
