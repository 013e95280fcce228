// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

// Package app contains shared application-layer constants used across the
// waylog mock backend handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded (malformed JSON, broken multipart framing, unparsable
	// metadata field).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgMessageTextRequired is returned when a chat request arrives with a
	// blank message text.
	MsgMessageTextRequired = "message text is required"

	// MsgUploadContentRequired is returned when an upload request carries
	// neither a note nor an image nor a voice part.
	MsgUploadContentRequired = "upload entry has no content"

	// MsgUploadTooLarge is returned when the multipart upload body exceeds
	// the server's size limit.
	MsgUploadTooLarge = "upload body exceeds limit"
)
