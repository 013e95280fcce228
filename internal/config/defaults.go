// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package config

import "time"

// Built-in configuration values used when no other source provides one.
const (
	// DefaultMinFixInterval is the debounce window between accepted fixes.
	DefaultMinFixInterval = 300 * time.Second
	// DefaultMaxAccuracy is the accuracy radius in meters at or above which
	// a reading is discarded.
	DefaultMaxAccuracy = 100.0
	// DefaultPollInterval is the foreground one-shot location request period.
	DefaultPollInterval = 300 * time.Second
	// DefaultMaxClipDuration is the hard cap on a single voice recording.
	DefaultMaxClipDuration = 30 * time.Second

	defaultDatabaseDSN    = "waylog.db"
	defaultBlobDir        = "blobs"
	defaultServerAddress  = "localhost:8080"
	defaultAPIAddress     = "http://localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultFeedInterval   = 45 * time.Second
)

// defaultConfig returns the built-in configuration. It is merged first, so
// every other source overrides it.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Sampler: Sampler{
			MinFixInterval: DefaultMinFixInterval,
			MaxAccuracy:    DefaultMaxAccuracy,
			PollInterval:   DefaultPollInterval,
		},
		Capture: Capture{
			MaxClipDuration: DefaultMaxClipDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: defaultDatabaseDSN,
			},
			Files: Files{
				BlobDir: defaultBlobDir,
			},
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAPIAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			FeedInterval: defaultFeedInterval,
		},
	}
}
