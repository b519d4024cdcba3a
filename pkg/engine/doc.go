// ABOUTME: Real-time multi-voice mixing engine package
// ABOUTME: Provides the Engine control API and completion signaling
// Package engine implements a low-latency three-voice audio mixer for timed
// stimulus playback.
//
// The engine owns three fixed voices: a one-shot voice for trial stimuli and
// two looping voices (background, target) for level calibration. A control
// thread drives the voices through Play, StartLoop, StopLoop and Stop while a
// hardware clock pulls mixed blocks through the render callback. All shared
// state sits behind a single short-held mutex; the callback does bounded work
// and never allocates.
//
// Example:
//
//	eng, _ := engine.New(engine.Config{SampleRate: 44100, BlockSize: 256}, output.NewMalgo())
//	eng.Start()
//	defer eng.Close()
//
//	dur, _ := eng.Play(clip)
//	eng.WaitDone(dur + time.Second)
package engine
