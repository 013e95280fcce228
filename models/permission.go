// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package models

// RecordPermission mirrors the platform's microphone permission state.
type RecordPermission int

const (
	// RecordPermissionUndetermined means the user has not yet been asked
	// for microphone access.
	RecordPermissionUndetermined RecordPermission = iota

	// RecordPermissionDenied means microphone access was refused.
	RecordPermissionDenied

	// RecordPermissionGranted means recording is allowed.
	RecordPermissionGranted
)

// String implements fmt.Stringer for log output.
func (p RecordPermission) String() string {
	switch p {
	case RecordPermissionUndetermined:
		return "undetermined"
	case RecordPermissionDenied:
		return "denied"
	case RecordPermissionGranted:
		return "granted"
	default:
		return "unknown"
	}
}
