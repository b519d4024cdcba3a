// ABOUTME: Audio resampling package using cubic interpolation
// ABOUTME: Converts clips to the engine's sample rate before playback
// Package resample converts clips between sample rates.
//
// The engine performs no sample rate conversion itself; every clip must be
// brought to the engine's configured rate first. This package does that
// offline with 4-point Catmull-Rom interpolation, which is plenty for speech
// and noise stimuli.
//
// Example:
//
//	clip, _ := decode.File("stimulus.wav")
//	clip, _ = resample.To(clip, 44100)
package resample
