// Package geotrack decides which raw location readings become part of the
// persisted journal. The Sampler applies an accuracy filter and a time
// debounce to every reading a Provider delivers, records the survivors
// through a FixStore, and publishes an observable Status after every
// mutation.
package geotrack

import (
	"context"
	"time"

	"waylog/models"
)

//go:generate mockgen -source=provider.go -destination=../mock/geotrack_mock.go -package=mock

// Fix is a single raw reading delivered by a location Provider. It carries no
// identity: the Sampler assigns an ID only when the reading is accepted into
// the journal.
type Fix struct {
	// Latitude is the geographic latitude in decimal degrees.
	Latitude float64

	// Longitude is the geographic longitude in decimal degrees.
	Longitude float64

	// Timestamp is the moment the reading was taken, as reported by the
	// platform.
	Timestamp time.Time

	// Accuracy is the horizontal accuracy radius in meters. Negative values
	// mark an invalid reading.
	Accuracy float64
}

// Provider abstracts the host platform's location services. The production
// implementation is supplied by the platform layer; the agent binary uses
// SimulatedProvider.
//
// Provider methods must not invoke Delegate hooks synchronously from within
// the call: the Sampler may hold its own lock while starting or stopping the
// provider, and deliveries are expected to arrive from the host dispatch
// context afterwards.
type Provider interface {
	// Authorization returns the platform's current location authorization
	// state.
	Authorization() models.Authorization

	// RequestWhenInUseAuthorization asks the platform to prompt the user for
	// foreground location access. The outcome arrives later through
	// Delegate.AuthorizationChanged.
	RequestWhenInUseAuthorization()

	// StartUpdates begins continuous location delivery.
	StartUpdates()

	// StopUpdates ends continuous location delivery.
	StopUpdates()

	// StartMonitoringSignificantChanges begins coarse delivery triggered by
	// large movements, which survives the app being suspended.
	StartMonitoringSignificantChanges()

	// StopMonitoringSignificantChanges ends coarse movement delivery.
	StopMonitoringSignificantChanges()

	// RequestLocation asks for a single one-shot reading. The result funnels
	// through Delegate.FixReceived like any continuous update.
	RequestLocation()
}

// Delegate receives location events from a Provider. *Sampler is the
// production implementation; the host platform layer invokes these hooks from
// its own dispatch context.
type Delegate interface {
	// FixReceived delivers one raw reading.
	FixReceived(fix Fix)

	// AuthorizationChanged reports a permission transition.
	AuthorizationChanged(state models.Authorization)

	// ProviderError reports a provider failure. Failures are non-fatal.
	ProviderError(err error)
}

// FixStore is the persistence contract the Sampler records accepted fixes
// through. waylog/internal/store provides the sqlite-backed implementation.
type FixStore interface {
	// Append adds an accepted fix to the durable history.
	Append(ctx context.Context, fix models.LocationFix) error

	// SetLastAccepted persists the debounce watermark.
	SetLastAccepted(ctx context.Context, at time.Time) error

	// Clear removes the whole history together with the watermark.
	Clear(ctx context.Context) error

	// All returns a copy of the recorded history in insertion order.
	All() []models.LocationFix

	// Count returns the number of recorded fixes.
	Count() int

	// LastAccepted returns the debounce watermark. The second return value
	// is false when no fix has ever been accepted.
	LastAccepted() (time.Time, bool)
}
