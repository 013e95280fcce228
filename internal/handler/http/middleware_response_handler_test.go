// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK) // second call is ignored

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("body"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, rec.Code)
}
