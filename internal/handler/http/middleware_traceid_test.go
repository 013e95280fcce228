// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"waylog/internal/logger"
)

func TestWithTraceID_GeneratesWhenMissing(t *testing.T) {
	h := NewHandler(nil, nil, logger.Nop())

	var seenInHandler string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenInHandler = w.Header().Get(traceIDHeader)
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	h.withTraceID(next).ServeHTTP(w, r)

	got := w.Header().Get(traceIDHeader)
	assert.NotEmpty(t, got)
	assert.Equal(t, got, seenInHandler)

	// Generated trace IDs are UUIDs.
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := NewHandler(nil, nil, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(traceIDHeader, "trace-from-upstream")
	h.withTraceID(next).ServeHTTP(w, r)

	assert.Equal(t, "trace-from-upstream", w.Header().Get(traceIDHeader))
}
