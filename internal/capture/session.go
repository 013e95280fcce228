// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package capture

import (
	"fmt"
	"sync"
	"time"

	"waylog/internal/config"
	"waylog/internal/logger"
	"waylog/models"
)

// Session enforces the voice clip policy: a recording runs at most
// MaxClipDuration and is stopped exactly once, whether the user stops it or
// the cap expires. The finished clip is handed to the registered handler.
// Entry points share one mutex, keeping the single-threaded event model of
// the host platform.
type Session struct {
	recorder Recorder
	player   Player
	onClip   func(clip []byte)
	logger   *logger.Logger

	maxClipDuration time.Duration

	mu           sync.Mutex
	recording    bool
	pendingStart bool
	playing      bool
	capTimer     *time.Timer
}

// NewSession builds a Session. onClip receives every finished clip; a nil
// handler drops clips with a warning. A non-positive cap falls back to the
// built-in default.
func NewSession(cfg config.ClientCapture, recorder Recorder, player Player, onClip func(clip []byte), log *logger.Logger) *Session {
	maxClipDuration := cfg.MaxClipDuration
	if maxClipDuration <= 0 {
		maxClipDuration = config.DefaultMaxClipDuration
	}

	return &Session{
		recorder:        recorder,
		player:          player,
		onClip:          onClip,
		logger:          log,
		maxClipDuration: maxClipDuration,
	}
}

// StartRecording begins a take. With the permission still undetermined it
// asks the platform to prompt the user and starts only on the grant; a
// refusal is returned immediately as ErrPermissionDenied.
func (s *Session) StartRecording() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recording || s.pendingStart {
		return ErrAlreadyRecording
	}

	switch s.recorder.Permission() {
	case models.RecordPermissionDenied:
		return ErrPermissionDenied
	case models.RecordPermissionUndetermined:
		s.pendingStart = true
		s.logger.Info().
			Str("func", "Session.StartRecording").
			Msg("microphone permission not determined, requesting")
		s.recorder.RequestPermission(s.permissionDecided)
		return nil
	default:
		return s.startLocked()
	}
}

// StopRecording ends the take before the cap and hands the clip to the
// handler. Called while the permission prompt is still pending it withdraws
// the start intent instead.
func (s *Session) StopRecording() error {
	s.mu.Lock()

	if s.pendingStart {
		s.pendingStart = false
		s.mu.Unlock()
		return nil
	}
	if !s.recording {
		s.mu.Unlock()
		return ErrNotRecording
	}

	clip, err := s.stopRecorderLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.deliver(clip)
	return nil
}

// IsRecording reports whether a take is in progress.
func (s *Session) IsRecording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.recording
}

// IsPlaying reports whether a clip is being played back.
func (s *Session) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.playing
}

// PlayClip starts playback of an encoded clip. A clip already playing is
// stopped first.
func (s *Session) PlayClip(clip []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playing {
		s.player.Stop()
		s.playing = false
	}

	if err := s.player.Play(clip); err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}
	s.playing = true

	return nil
}

// StopPlayback halts the player. Safe to call when nothing is playing.
func (s *Session) StopPlayback() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.playing {
		return
	}
	s.player.Stop()
	s.playing = false
}

// PlaybackFinished is the host callback for a clip reaching its natural end.
func (s *Session) PlaybackFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playing = false
}

// permissionDecided is handed to Recorder.RequestPermission and completes a
// pending start once the user grants access.
func (s *Session) permissionDecided(granted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := s.pendingStart
	s.pendingStart = false

	if !granted {
		s.logger.Warn().
			Str("func", "Session.permissionDecided").
			Msg("microphone permission denied by the user")
		return
	}
	if !wanted || s.recording {
		return
	}

	if err := s.startLocked(); err != nil {
		s.logger.Err(err).
			Str("func", "Session.permissionDecided").
			Msg("failed to start recording after permission grant")
	}
}

// startLocked starts the recorder and arms the cap timer. Callers must hold
// s.mu.
func (s *Session) startLocked() error {
	if err := s.recorder.Start(); err != nil {
		return fmt.Errorf("failed to start recorder: %w", err)
	}

	s.recording = true
	s.capTimer = time.AfterFunc(s.maxClipDuration, s.capExpired)

	s.logger.Debug().
		Str("func", "Session.startLocked").
		Dur("max_clip_duration", s.maxClipDuration).
		Msg("recording started")

	return nil
}

// capExpired fires when a take reaches MaxClipDuration. A take already
// stopped by the user is left alone, which keeps the stop exactly-once.
func (s *Session) capExpired() {
	s.mu.Lock()

	if !s.recording {
		s.mu.Unlock()
		return
	}

	s.logger.Info().
		Str("func", "Session.capExpired").
		Dur("max_clip_duration", s.maxClipDuration).
		Msg("recording reached the duration cap")

	clip, err := s.stopRecorderLocked()
	s.mu.Unlock()
	if err != nil {
		s.logger.Err(err).
			Str("func", "Session.capExpired").
			Msg("failed to stop recording at the cap")
		return
	}

	s.deliver(clip)
}

// stopRecorderLocked flips the recording state off, disarms the cap timer
// and collects the encoded clip. Callers must hold s.mu.
func (s *Session) stopRecorderLocked() ([]byte, error) {
	s.recording = false
	if s.capTimer != nil {
		s.capTimer.Stop()
		s.capTimer = nil
	}

	clip, err := s.recorder.Stop()
	if err != nil {
		return nil, fmt.Errorf("failed to stop recorder: %w", err)
	}

	return clip, nil
}

// deliver hands a finished clip to the handler outside the state lock, so
// the handler may call back into the session.
func (s *Session) deliver(clip []byte) {
	if s.onClip == nil {
		s.logger.Warn().
			Str("func", "Session.deliver").
			Msg("no clip handler registered, dropping recording")
		return
	}

	s.onClip(clip)
}
