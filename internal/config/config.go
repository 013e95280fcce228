// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the waylog
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as startup tracking intent
	// and the application version.
	App App `envPrefix:"APP_"`

	// Sampler holds the location sampling policy knobs: debounce window,
	// accuracy threshold, and the foreground poll timer interval.
	Sampler Sampler `envPrefix:"SAMPLER_"`

	// Capture holds voice capture settings, most importantly the hard cap
	// on clip duration.
	Capture Capture `envPrefix:"CAPTURE_"`

	// Storage holds configuration for the local persistence backends: the
	// key-value database and the blob directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the mock API
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound client transport settings (mock backend
	// base address and request timeout).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TrackOnStart enables background location tracking as soon as the
	// agent starts, without waiting for an explicit toggle.
	// Env: APP_TRACK_ON_START
	TrackOnStart bool `env:"TRACK_ON_START"`

	// Simulate replaces the platform location provider with the built-in
	// simulated feed. Intended for development and demos.
	// Env: APP_SIMULATE
	Simulate bool `env:"SIMULATE"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Sampler holds the location sampling policy settings.
type Sampler struct {
	// MinFixInterval is the debounce window: a new fix is accepted only if
	// it is at least this much later than the previously accepted one.
	// Env: SAMPLER_MIN_FIX_INTERVAL
	MinFixInterval time.Duration `env:"MIN_FIX_INTERVAL"`

	// MaxAccuracy is the horizontal accuracy threshold in meters; readings
	// with an accuracy radius at or above it are discarded.
	// Env: SAMPLER_MAX_ACCURACY
	MaxAccuracy float64 `env:"MAX_ACCURACY"`

	// PollInterval is the period of the foreground timer that requests a
	// one-shot location fix while sampling is active.
	// Env: SAMPLER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// DisableSignificantChanges turns off the platform's significant-change
	// monitoring; by default it runs alongside continuous updates.
	// Env: SAMPLER_DISABLE_SIGNIFICANT_CHANGES
	DisableSignificantChanges bool `env:"DISABLE_SIGNIFICANT_CHANGES"`
}

// Capture holds voice capture settings.
type Capture struct {
	// MaxClipDuration is the hard cap on a single voice recording; the
	// session stops the recorder when it elapses.
	// Env: CAPTURE_MAX_CLIP_DURATION
	MaxClipDuration time.Duration `env:"MAX_CLIP_DURATION"`
}

// Storage groups the configuration for all local persistence backends.
type Storage struct {
	// DB holds the key-value database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the blob side-car directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local key-value database.
type DB struct {
	// DSN is the SQLite file path backing the key-value store
	// (e.g. "waylog.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the blob side-car store.
type Files struct {
	// BlobDir is the directory where image and voice blob files are kept,
	// named by record ID.
	// Env: STORAGE_FILES_BLOB_DIR
	BlobDir string `env:"BLOB_DIR"`
}

// Server holds network and timeout settings for the mock API server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound transport settings used by the agent.
type Adapter struct {
	// HTTPAddress is the base address of the mock backend
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// FeedInterval is the tick period of the simulated location feed when
	// the agent runs with simulation enabled.
	// Env: WORKERS_FEED_INTERVAL
	FeedInterval time.Duration `env:"FEED_INTERVAL"`
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
