package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSamplerConfigs indicates invalid location sampling settings
	// (for example, a zero debounce window or non-positive accuracy gate).
	ErrInvalidSamplerConfigs = errors.New("invalid sampler configuration")
	// ErrInvalidCaptureConfigs indicates invalid voice capture settings
	// (for example, a zero clip duration cap).
	ErrInvalidCaptureConfigs = errors.New("invalid capture configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN, unsupported in-memory DSN, or empty blob dir).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing backend address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero simulated feed interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
