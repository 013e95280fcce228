// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the mock server tolerates partial
// configuration because every field carries a built-in default.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Sampler.MinFixInterval <= 0 || cfg.Sampler.MaxAccuracy <= 0 || cfg.Sampler.PollInterval <= 0 {
		return ErrInvalidSamplerConfigs
	}

	if cfg.Capture.MaxClipDuration <= 0 {
		return ErrInvalidCaptureConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.BlobDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Simulate && cfg.Workers.FeedInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
