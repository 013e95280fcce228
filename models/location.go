package models

import "time"

// LocationFix is a single accepted GPS reading.
// It is the primary persistence model for the background location journal.
// Fixes are append-only: once recorded they are never edited, only cleared
// in bulk by an explicit user action.
type LocationFix struct {
	// ID is the unique identifier of the fix, assigned on acceptance.
	ID string `json:"id"`

	// Latitude is the geographic latitude in decimal degrees.
	Latitude float64 `json:"latitude"`

	// Longitude is the geographic longitude in decimal degrees.
	Longitude float64 `json:"longitude"`

	// Timestamp is the moment the reading was taken, as reported by the
	// location provider. Storage order keeps timestamps monotonically
	// non-decreasing.
	Timestamp time.Time `json:"timestamp"`

	// Accuracy is the horizontal accuracy radius in meters. Only readings
	// with accuracy below the sampler threshold are ever recorded.
	Accuracy float64 `json:"accuracy"`
}
