// ABOUTME: Device binding package for the mixing engine
// ABOUTME: Provides Binding interface with malgo, oto and manual backends
// Package output provides the hardware clock behind the mixing engine.
//
// A Binding opens a mono 16-bit playback stream and pulls blocks through the
// engine's render callback. Three backends are available:
//
//   - Malgo: miniaudio device with the period size pinned to the engine's
//     block size and a low-latency profile. The default for experiments.
//   - Oto: oto/v3 player fed by a pull reader. Portable fallback.
//   - Manual: no hardware; the caller steps the clock by hand. Used by
//     tests and offline rendering.
package output
