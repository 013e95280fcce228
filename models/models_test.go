package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorization_Authorized(t *testing.T) {
	assert.False(t, AuthorizationUndetermined.Authorized())
	assert.False(t, AuthorizationDenied.Authorized())
	assert.False(t, AuthorizationRestricted.Authorized())
	assert.True(t, AuthorizationWhenInUse.Authorized())
	assert.True(t, AuthorizationAlways.Authorized())
}

func TestAuthorization_Blocked(t *testing.T) {
	assert.True(t, AuthorizationDenied.Blocked())
	assert.True(t, AuthorizationRestricted.Blocked())
	assert.False(t, AuthorizationUndetermined.Blocked())
	assert.False(t, AuthorizationWhenInUse.Blocked())
	assert.False(t, AuthorizationAlways.Blocked())
}

func TestAuthorization_String(t *testing.T) {
	assert.Equal(t, "undetermined", AuthorizationUndetermined.String())
	assert.Equal(t, "denied", AuthorizationDenied.String())
	assert.Equal(t, "restricted", AuthorizationRestricted.String())
	assert.Equal(t, "when_in_use", AuthorizationWhenInUse.String())
	assert.Equal(t, "always", AuthorizationAlways.String())
	assert.Equal(t, "unknown", Authorization(42).String())
}

func TestUploadDraft_Empty(t *testing.T) {
	assert.True(t, UploadDraft{}.Empty())
	assert.False(t, UploadDraft{Note: "n"}.Empty())
	assert.False(t, UploadDraft{Image: []byte{0xff}}.Empty())
	assert.False(t, UploadDraft{Voice: []byte{0x01}}.Empty())
}

func TestLocationFix_JSONRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	fixes := []LocationFix{
		{ID: "a", Latitude: 60.1699, Longitude: 24.9384, Timestamp: ts, Accuracy: 12.5},
		{ID: "b", Latitude: -33.8688, Longitude: 151.2093, Timestamp: ts.Add(5 * time.Minute), Accuracy: 65},
	}

	payload, err := json.Marshal(fixes)
	require.NoError(t, err)

	var got []LocationFix
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, fixes, got)
}

func TestUploadEntry_JSONRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	entries := []UploadEntry{
		{ID: "1", Note: "first", Timestamp: ts, HasImage: true, HasVoice: false},
		{ID: "2", Note: "", Timestamp: ts.Add(time.Minute), HasImage: false, HasVoice: true},
	}

	payload, err := json.Marshal(entries)
	require.NoError(t, err)

	var got []UploadEntry
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, entries, got)
}
