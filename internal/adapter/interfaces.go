// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

// Package adapter provides transport-layer abstractions for communicating with
// the waylog mock backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrPayloadTooLarge] for 413).
package adapter

import (
	"context"

	"waylog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the waylog
// backend stubs. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package. The backend is unauthenticated, so no credential handling happens
// at this layer.
type ServerAdapter interface {
	// SendChatMessage posts one user message to the chat stub and returns
	// the backend's reply. Returns an error if the request fails, the server
	// responds with a non-2xx status, or the reply cannot be decoded.
	SendChatMessage(ctx context.Context, req models.ChatMessageRequest) (models.ChatMessageResponse, error)

	// UploadEntry sends one journal entry to the upload stub as a multipart
	// request: a JSON metadata field plus optional image and voice file
	// parts. Empty payloads are omitted from the request entirely. Returns
	// the server's acceptance receipt.
	UploadEntry(ctx context.Context, entry models.UploadEntry, image []byte, voice []byte) (models.UploadReceipt, error)

	// Ping probes the backend health endpoint. Returns nil when the backend
	// answers with a 2xx status.
	Ping(ctx context.Context) error
}
