// Package capture owns the voice clip policy of the application: a hard
// duration cap on recordings, permission gating, and playback state. The OS
// audio machinery stays behind the Recorder and Player capabilities supplied
// by the host platform layer.
package capture

import "waylog/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/capture_mock.go -package=mock

// Recorder abstracts the host platform's audio recorder. Implementations
// must not invoke callbacks synchronously from within a method call; the
// Session may hold its own lock while talking to the recorder.
type Recorder interface {
	// Permission returns the platform's current microphone permission state.
	Permission() models.RecordPermission

	// RequestPermission shows the system microphone prompt. decided is
	// invoked later from the host dispatch context with the user's choice.
	RequestPermission(decided func(granted bool))

	// Start begins capturing audio through the OS encoder.
	Start() error

	// Stop ends the capture and returns the encoded clip bytes.
	Stop() ([]byte, error)
}

// Player abstracts encoded clip playback.
type Player interface {
	// Play starts playback of an encoded clip.
	Play(clip []byte) error

	// Stop halts playback. Safe to call when nothing is playing.
	Stop()
}
