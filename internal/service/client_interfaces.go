package service

import (
	"context"

	"waylog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientUploadService defines the client-side contract for creating and
// managing journal entries. Entries are persisted locally first; the backend
// post that follows is best-effort and never rolls the local write back.
type ClientUploadService interface {
	// Create validates that the draft carries at least one of note, image, or
	// voice, assigns a new entry ID and creation timestamp, persists the entry
	// (with its blobs) in the local store, and posts it to the backend. A
	// backend failure is logged and swallowed, the locally stored entry is
	// returned either way. Returns [ErrEmptyEntry] if the draft is empty, or
	// an error if local persistence fails.
	Create(ctx context.Context, draft models.UploadDraft) (models.UploadEntry, error)

	// List returns all stored entries in insertion order.
	List() []models.UploadEntry

	// Delete removes the entry identified by id together with its blob files.
	// Returns an error if the entry does not exist or removal fails.
	Delete(ctx context.Context, id string) error

	// ClearAll removes every stored entry and all blob files.
	ClearAll(ctx context.Context) error

	// Image loads the image payload stored for the entry id. Returns
	// [store.ErrBlobNotFound] (wrapped) if the entry has no image blob.
	Image(id string) ([]byte, error)

	// Voice loads the voice clip stored for the entry id. Returns
	// [store.ErrBlobNotFound] (wrapped) if the entry has no voice blob.
	Voice(id string) ([]byte, error)
}

// ClientChatService defines the client-side contract for the process-lifetime
// conversation with the chat stub. The conversation is kept in memory only and
// is not part of the persisted state layout.
type ClientChatService interface {
	// Send appends the user's message to the conversation, posts it to the
	// chat stub, and appends and returns the stub's reply. The user message
	// stays in the conversation even when the backend call fails. Returns
	// [ErrEmptyMessage] if text is blank, or an error if the backend call
	// fails.
	Send(ctx context.Context, text string) (models.ChatMessage, error)

	// History returns a copy of the conversation so far, oldest first.
	History() []models.ChatMessage
}
