package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waylog/internal/config"
	"waylog/internal/logger"
	"waylog/internal/service"
	"waylog/internal/validators"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers_HTTPAddress verifies that when HTTPAddress is configured,
// the HTTP handler is initialised and no error is returned.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{
		HTTPAddress: ":8080",
	}

	h, err := NewHandlers(newTestServices(), validators.NewRequestValidator(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that when HTTPAddress is not configured,
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := config.Server{}

	h, err := NewHandlers(newTestServices(), validators.NewRequestValidator(), cfg, newTestLogger())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(newTestServices(), validators.NewRequestValidator(), cfg, newTestLogger())
	h2, err2 := NewHandlers(newTestServices(), validators.NewRequestValidator(), cfg, newTestLogger())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
