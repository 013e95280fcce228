package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// TrackOnStart enables background tracking as soon as the agent starts.
	TrackOnStart bool
	// Simulate replaces the platform location provider with the simulated feed.
	Simulate bool
	// Version is the semantic version string of the running application.
	Version string
}

// ClientSampler holds the location sampling policy used by the agent.
type ClientSampler struct {
	// MinFixInterval is the debounce window between accepted fixes.
	MinFixInterval time.Duration
	// MaxAccuracy is the accuracy radius gate in meters.
	MaxAccuracy float64
	// PollInterval is the foreground one-shot location request period.
	PollInterval time.Duration
	// DisableSignificantChanges turns off significant-change monitoring.
	DisableSignificantChanges bool
}

// ClientCapture holds voice capture settings used by the agent.
type ClientCapture struct {
	// MaxClipDuration is the hard cap on a single voice recording.
	MaxClipDuration time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the mock backend base address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path backing the key-value store.
	DSN string
}

// ClientFiles contains blob side-car storage settings for the client.
type ClientFiles struct {
	// BlobDir is the directory holding image and voice blob files.
	BlobDir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Files holds blob directory settings.
	Files ClientFiles
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// FeedInterval defines how often the simulated feed emits a fix.
	FeedInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Sampler contains the location sampling policy.
	Sampler ClientSampler
	// Capture contains voice capture settings.
	Capture ClientCapture
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			TrackOnStart: cfg.App.TrackOnStart,
			Simulate:     cfg.App.Simulate,
			Version:      cfg.App.Version,
		},
		Sampler: ClientSampler{
			MinFixInterval:            cfg.Sampler.MinFixInterval,
			MaxAccuracy:               cfg.Sampler.MaxAccuracy,
			PollInterval:              cfg.Sampler.PollInterval,
			DisableSignificantChanges: cfg.Sampler.DisableSignificantChanges,
		},
		Capture: ClientCapture{
			MaxClipDuration: cfg.Capture.MaxClipDuration,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Files: ClientFiles{
				BlobDir: cfg.Storage.Files.BlobDir,
			},
		},
		Workers: ClientWorkers{FeedInterval: cfg.Workers.FeedInterval},
	}

	return clientCfg, clientCfg.validate()
}
