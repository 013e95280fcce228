package capture

import "errors"

var (
	// ErrPermissionDenied is returned by StartRecording when microphone
	// access has been refused.
	ErrPermissionDenied = errors.New("microphone permission denied")

	// ErrAlreadyRecording is returned by StartRecording while a take is in
	// progress or a permission prompt is pending.
	ErrAlreadyRecording = errors.New("recording already in progress")

	// ErrNotRecording is returned by StopRecording when no take is in
	// progress.
	ErrNotRecording = errors.New("no recording in progress")
)
