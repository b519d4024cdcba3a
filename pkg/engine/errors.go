// ABOUTME: Engine error definitions
// ABOUTME: Sentinel errors for argument validation and lifecycle misuse
package engine

import "errors"

var (
	// ErrInvalidVoice is returned when a loop operation names a voice that
	// is not background or target.
	ErrInvalidVoice = errors.New("loop voice must be background or target")

	// ErrNotMono is returned when a clip with more than one channel is
	// handed to a voice. Callers downmix first (see audio.Clip.Mono).
	ErrNotMono = errors.New("clip must be mono")

	// ErrClosed is returned from operations on an engine after Close.
	ErrClosed = errors.New("engine is closed")

	// ErrNotStarted is returned from Start when the device binding is
	// missing.
	ErrNotStarted = errors.New("engine has no device binding")
)
