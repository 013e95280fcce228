// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package capture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waylog/internal/logger"
	"waylog/models"
)

func TestSimulatedRecorder_PermissionArc(t *testing.T) {
	r := NewSimulatedRecorder(logger.Nop())

	assert.Equal(t, models.RecordPermissionUndetermined, r.Permission())

	decided := make(chan bool, 1)
	r.RequestPermission(func(granted bool) { decided <- granted })

	select {
	case granted := <-decided:
		assert.True(t, granted)
	case <-time.After(time.Second):
		t.Fatal("permission decision not delivered")
	}
	assert.Equal(t, models.RecordPermissionGranted, r.Permission())
}

func TestSimulatedRecorder_StartStopProducesClip(t *testing.T) {
	r := NewSimulatedRecorder(logger.Nop())

	require.NoError(t, r.Start())

	// A second start is refused while a take is in progress.
	assert.ErrorIs(t, r.Start(), ErrAlreadyRecording)

	clip, err := r.Stop()
	require.NoError(t, err)
	assert.NotEmpty(t, clip)
}

func TestSimulatedRecorder_StopWithoutStart(t *testing.T) {
	r := NewSimulatedRecorder(logger.Nop())

	_, err := r.Stop()
	assert.ErrorIs(t, err, errRecorderNotStarted)
}

func TestSimulatedPlayer_PlayRejectsEmptyClip(t *testing.T) {
	p := NewSimulatedPlayer(logger.Nop())

	assert.Error(t, p.Play(nil))
	assert.NoError(t, p.Play([]byte{0x01}))
	p.Stop()
}
