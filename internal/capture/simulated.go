package capture

import (
	"errors"
	"sync"
	"time"

	"waylog/internal/logger"
	"waylog/models"
)

// simulatedBytesPerSecond sizes synthesized clips roughly like a 32 kbit/s
// AAC mono stream.
const simulatedBytesPerSecond = 4000

var errRecorderNotStarted = errors.New("recorder is not started")

// SimulatedRecorder is a Recorder for the agent binary: it synthesizes clip
// bytes from the take duration instead of capturing audio. Permission starts
// undetermined and is granted on request, so the full prompt arc is exercised
// without a device.
type SimulatedRecorder struct {
	logger *logger.Logger

	mu         sync.Mutex
	permission models.RecordPermission
	recording  bool
	startedAt  time.Time
}

// NewSimulatedRecorder returns a recorder with the permission still
// undetermined.
func NewSimulatedRecorder(log *logger.Logger) *SimulatedRecorder {
	return &SimulatedRecorder{
		logger:     log,
		permission: models.RecordPermissionUndetermined,
	}
}

// Permission implements Recorder.
func (r *SimulatedRecorder) Permission() models.RecordPermission {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.permission
}

// RequestPermission grants access asynchronously, standing in for the user
// tapping "Allow" on the system prompt. A decision already made is reported
// again unchanged.
func (r *SimulatedRecorder) RequestPermission(decided func(granted bool)) {
	r.mu.Lock()
	if r.permission == models.RecordPermissionUndetermined {
		r.permission = models.RecordPermissionGranted
	}
	granted := r.permission == models.RecordPermissionGranted
	r.mu.Unlock()

	r.logger.Info().
		Str("func", "SimulatedRecorder.RequestPermission").
		Bool("granted", granted).
		Msg("simulated microphone prompt answered")

	if decided != nil {
		go decided(granted)
	}
}

// Start implements Recorder.
func (r *SimulatedRecorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return ErrAlreadyRecording
	}
	r.recording = true
	r.startedAt = time.Now()

	return nil
}

// Stop implements Recorder. The returned clip grows with the take duration
// and is never empty.
func (r *SimulatedRecorder) Stop() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil, errRecorderNotStarted
	}
	r.recording = false

	size := int(time.Since(r.startedAt).Seconds()*simulatedBytesPerSecond) + 1
	clip := make([]byte, size)
	for i := 0; i < len(clip); i++ {
		clip[i] = byte(i % 251)
	}

	return clip, nil
}

// SimulatedPlayer is a Player that discards clips instead of playing them.
type SimulatedPlayer struct {
	logger *logger.Logger
}

// NewSimulatedPlayer returns a player that only logs playback.
func NewSimulatedPlayer(log *logger.Logger) *SimulatedPlayer {
	return &SimulatedPlayer{logger: log}
}

// Play implements Player.
func (p *SimulatedPlayer) Play(clip []byte) error {
	if len(clip) == 0 {
		return errors.New("empty clip")
	}

	p.logger.Debug().
		Str("func", "SimulatedPlayer.Play").
		Int("clip_bytes", len(clip)).
		Msg("simulated playback started")

	return nil
}

// Stop implements Player.
func (p *SimulatedPlayer) Stop() {}
