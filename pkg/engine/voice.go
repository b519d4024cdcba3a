// ABOUTME: Voice model for the mixing engine
// ABOUTME: Defines the three fixed playback slots and their state
package engine

// VoiceName identifies one of the engine's three fixed playback slots.
type VoiceName string

const (
	// Oneshot plays a trial stimulus once and signals completion.
	Oneshot VoiceName = "oneshot"
	// Background loops background noise (e.g. during a level test).
	Background VoiceName = "background"
	// Target loops the target sound (e.g. during a level test).
	Target VoiceName = "target"
)

// Mixing order is the array order: oneshot, background, target.
const (
	voiceOneshot = iota
	voiceBackground
	voiceTarget
	numVoices
)

// voice is a playback slot. The loop flag is fixed per slot for the life of
// the engine. When active, pos is a valid index into buf; when inactive it
// is reset to 0.
type voice struct {
	buf    []int16
	pos    int
	active bool
	loop   bool
}

// loopVoiceIndex maps a loop voice name to its slot, rejecting oneshot and
// unknown names.
func loopVoiceIndex(name VoiceName) (int, error) {
	switch name {
	case Background:
		return voiceBackground, nil
	case Target:
		return voiceTarget, nil
	default:
		return 0, ErrInvalidVoice
	}
}
