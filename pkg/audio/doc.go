// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines the Clip type and stimulus preparation helpers
// Package audio provides the PCM clip model shared by the playback engine
// and the stimulus preparation pipeline.
//
// This package defines the core type used throughout the stimulus library:
//   - Clip: Interleaved signed 16-bit PCM with sample rate and channel count
//
// It also provides the preparation steps a clip goes through before it is
// handed to the engine:
//   - Mono downmix (the engine accepts mono clips only)
//   - RMS normalization for leveling a stimulus corpus
//   - Fade ramps for click suppression on short one-shot stimuli
//
// Example:
//
//	clip, _ := decode.File("stimulus.wav")
//	clip = clip.Mono().NormalizeRMS(0.1).ApplyFades(10*time.Millisecond, 10*time.Millisecond)
package audio
