package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "5m" or raw nanosecond numbers.
	jsonBody := `{
		"app": {
			"track_on_start": true,
			"simulate": true,
			"version": "1.2.3"
		},
		"sampler": {
			"min_fix_interval": "5m",
			"max_accuracy": 50,
			"poll_interval": "2m",
			"disable_significant_changes": true
		},
		"capture": {
			"max_clip_duration": "30s"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"adapter": {
			"http_address": "http://localhost:8080",
			"request_timeout": "15s"
		},
		"workers": {
			"feed_interval": "45s"
		},
		"storage": {
			"db": { "dsn": "waylog-test.db" },
			"files": { "blob_dir": "/var/blobs" }
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.App.TrackOnStart)
	assert.True(t, cfg.App.Simulate)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, 5*time.Minute, cfg.Sampler.MinFixInterval)
	assert.Equal(t, 50.0, cfg.Sampler.MaxAccuracy)
	assert.Equal(t, 2*time.Minute, cfg.Sampler.PollInterval)
	assert.True(t, cfg.Sampler.DisableSignificantChanges)

	assert.Equal(t, 30*time.Second, cfg.Capture.MaxClipDuration)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 45*time.Second, cfg.Workers.FeedInterval)

	assert.Equal(t, "waylog-test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/blobs", cfg.Storage.Files.BlobDir)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")

	// 300000000000 ns == 5m.
	jsonBody := `{
		"sampler": { "min_fix_interval": 300000000000 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Sampler.MinFixInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// min_fix_interval should be a duration string; make it invalid.
	jsonBody := `{
		"sampler": { "min_fix_interval": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Sampler{}, cfg.Sampler)
	assert.Equal(t, Capture{}, cfg.Capture)
	assert.Equal(t, Storage{}, cfg.Storage)
}
