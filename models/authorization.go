// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package models

// Authorization mirrors the platform's location authorization state.
// It is updated only from the host platform callback and is read by the
// sampler to gate start/stop decisions.
type Authorization int

const (
	// AuthorizationUndetermined means the user has not yet been asked for
	// location access.
	AuthorizationUndetermined Authorization = iota

	// AuthorizationDenied means the user explicitly refused location access.
	AuthorizationDenied

	// AuthorizationRestricted means location access is blocked by device
	// policy (parental controls, MDM profile) rather than user choice.
	AuthorizationRestricted

	// AuthorizationWhenInUse grants location access while the application
	// is in the foreground.
	AuthorizationWhenInUse

	// AuthorizationAlways grants location access including background
	// delivery.
	AuthorizationAlways
)

// Authorized reports whether the state permits the sampler to run.
func (a Authorization) Authorized() bool {
	return a == AuthorizationWhenInUse || a == AuthorizationAlways
}

// Blocked reports whether the state forbids sampling outright, as opposed to
// merely not having been requested yet.
func (a Authorization) Blocked() bool {
	return a == AuthorizationDenied || a == AuthorizationRestricted
}

// String implements fmt.Stringer for log output.
func (a Authorization) String() string {
	switch a {
	case AuthorizationUndetermined:
		return "undetermined"
	case AuthorizationDenied:
		return "denied"
	case AuthorizationRestricted:
		return "restricted"
	case AuthorizationWhenInUse:
		return "when_in_use"
	case AuthorizationAlways:
		return "always"
	default:
		return "unknown"
	}
}
