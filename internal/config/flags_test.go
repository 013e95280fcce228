package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only host no port",
			addr:     NetAddress{Host: "localhost", Port: 0},
			expected: "localhost:0",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectError:  false,
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectError:  false,
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "negative port",
			input:       "localhost:-1",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr.Host, addr.Host)
				assert.Equal(t, tt.expectedAddr.Port, addr.Port)
			}
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-api-address", "http://localhost:8080",
				"-d", "waylog-test.db",
				"-blob-dir", "/var/blobs",
				"-c", "/path/to/config.json",
				"-track",
				"-simulate",
				"-min-fix-interval", "5m",
				"-max-accuracy", "75",
				"-poll-interval", "2m",
				"-max-clip-duration", "30s",
				"-feed-interval", "45s",
				"-request-timeout", "30s",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "waylog-test.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/var/blobs", cfg.Storage.Files.BlobDir)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.True(t, cfg.App.TrackOnStart)
				assert.True(t, cfg.App.Simulate)
				assert.Equal(t, 5*time.Minute, cfg.Sampler.MinFixInterval)
				assert.Equal(t, 75.0, cfg.Sampler.MaxAccuracy)
				assert.Equal(t, 2*time.Minute, cfg.Sampler.PollInterval)
				assert.Equal(t, 30*time.Second, cfg.Capture.MaxClipDuration)
				assert.Equal(t, 45*time.Second, cfg.Workers.FeedInterval)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-a", "127.0.0.1:3000",
				"-min-fix-interval", "10m",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddress)
				assert.Equal(t, 10*time.Minute, cfg.Sampler.MinFixInterval)
				assert.Empty(t, cfg.Adapter.HTTPAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.Adapter.HTTPAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.Storage.Files.BlobDir)
				assert.Empty(t, cfg.JSONFilePath)
				assert.False(t, cfg.App.TrackOnStart)
				assert.Zero(t, cfg.Sampler.MinFixInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestNetAddress_SetAndString tests the round-trip of Set and String
func TestNetAddress_SetAndString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"localhost:8080", "localhost:8080"},
		{"127.0.0.1:9090", "127.0.0.1:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}
