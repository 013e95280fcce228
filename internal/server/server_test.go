// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waylog/internal/config"
	"waylog/internal/handler"
	myhttp "waylog/internal/handler/http"
	"waylog/internal/logger"
)

func TestNewServer_HTTPAddress(t *testing.T) {
	log := logger.Nop()
	handlers := &handler.Handlers{HTTP: myhttp.NewHandler(nil, nil, log)}

	s, err := NewServer(handlers, config.Server{HTTPAddress: ":8080"}, log)

	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	log := logger.Nop()

	s, err := NewServer(&handler.Handlers{}, config.Server{}, log)

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}
