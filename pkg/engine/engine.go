// ABOUTME: Engine control API and lifecycle
// ABOUTME: Owns the voice set, the lock and the completion signal
package engine

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/percept-lab/stimulus-go/pkg/audio"
	"github.com/percept-lab/stimulus-go/pkg/engine/output"
)

// Default playback format, matching the stimulus corpus.
const (
	DefaultSampleRate = 44100
	DefaultBlockSize  = 256
)

// Config holds the fixed playback format. Both values are frame counts per
// second / per callback and cannot change after construction.
type Config struct {
	SampleRate int
	BlockSize  int
}

// Engine mixes three fixed voices into a mono 16-bit output stream.
//
// Control methods may be called from any goroutine; the render callback runs
// on the device binding's clock. A single mutex guards the voices and the
// completion flag, and is the only synchronization point between the two
// sides.
type Engine struct {
	cfg     Config
	binding output.Binding

	mu     sync.Mutex
	voices [numVoices]voice
	done   bool
	doneCh chan struct{}
	mix    []float32 // scratch accumulator, reused every callback

	started bool
	closed  bool
}

// New creates an engine in the Constructed state. The binding is not opened
// until Start. Zero config fields fall back to the defaults.
func New(cfg Config, binding output.Binding) (*Engine, error) {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.BlockSize == 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	if cfg.SampleRate < 0 || cfg.BlockSize < 0 {
		return nil, fmt.Errorf("invalid config: %dHz, block %d", cfg.SampleRate, cfg.BlockSize)
	}

	e := &Engine{
		cfg:     cfg,
		binding: binding,
		doneCh:  make(chan struct{}),
		mix:     make([]float32, cfg.BlockSize),
	}
	e.voices[voiceBackground].loop = true
	e.voices[voiceTarget].loop = true
	return e, nil
}

// Config returns the fixed playback format.
func (e *Engine) Config() Config {
	return e.cfg
}

// Start opens the device binding and begins the callback stream.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if e.started {
		e.mu.Unlock()
		return nil
	}
	if e.binding == nil {
		e.mu.Unlock()
		return ErrNotStarted
	}
	e.started = true
	e.mu.Unlock()

	if err := e.binding.Start(e.cfg.SampleRate, e.cfg.BlockSize, e.renderBlock); err != nil {
		e.mu.Lock()
		e.started = false
		e.mu.Unlock()
		return fmt.Errorf("failed to start output device: %w", err)
	}

	log.Printf("Audio engine started: %dHz, block %d frames", e.cfg.SampleRate, e.cfg.BlockSize)
	return nil
}

// Play assigns a mono clip to the oneshot voice, replacing any stimulus that
// is still playing, and clears the completion signal. The effect is visible
// to the callback from its next invocation. Returns the playback duration at
// the engine's sample rate, rounded to the nearest millisecond.
func (e *Engine) Play(clip audio.Clip) (time.Duration, error) {
	if clip.Channels > 1 {
		return 0, ErrNotMono
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return 0, ErrClosed
	}
	v := &e.voices[voiceOneshot]
	v.buf = clip.Samples
	v.pos = 0
	v.active = true
	if e.done {
		e.done = false
		e.doneCh = make(chan struct{})
	}
	e.mu.Unlock()

	ms := math.Round(1000 * float64(len(clip.Samples)) / float64(e.cfg.SampleRate))
	return time.Duration(ms) * time.Millisecond, nil
}

// StartLoop assigns a mono clip to a looping voice and activates it. The
// name must be Background or Target. Replacing a running loop's clip takes
// effect on the next callback with no crossfade.
func (e *Engine) StartLoop(name VoiceName, clip audio.Clip) error {
	vi, err := loopVoiceIndex(name)
	if err != nil {
		return err
	}
	if clip.Channels > 1 {
		return ErrNotMono
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	v := &e.voices[vi]
	v.buf = clip.Samples
	v.pos = 0
	v.active = true
	return nil
}

// StopLoop deactivates a looping voice and rewinds it.
func (e *Engine) StopLoop(name VoiceName) error {
	vi, err := loopVoiceIndex(name)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	v := &e.voices[vi]
	v.active = false
	v.pos = 0
	return nil
}

// IsLooping reports whether a looping voice is currently active.
func (e *Engine) IsLooping(name VoiceName) (bool, error) {
	vi, err := loopVoiceIndex(name)
	if err != nil {
		return false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voices[vi].active, nil
}

// Stop silences all voices, releases their buffers and forces the completion
// signal set, unblocking any WaitDone caller. The device stream keeps
// running and plays silence.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for vi := range e.voices {
		v := &e.voices[vi]
		v.active = false
		v.pos = 0
		v.buf = nil
	}
	e.setDoneLocked()
}

// WaitDone blocks until the oneshot voice finishes (or Stop/Close forces the
// signal) and reports whether the signal was set, as opposed to the wait
// timing out. A negative timeout waits indefinitely; a zero timeout polls.
//
// The signal is shared per engine, not per Play call: a new Play clears it,
// so a waiter from an earlier call is satisfied by whichever stimulus
// completes next. Control-thread only; never call from the render callback.
func (e *Engine) WaitDone(timeout time.Duration) bool {
	e.mu.Lock()
	if e.done {
		e.mu.Unlock()
		return true
	}
	ch := e.doneCh
	e.mu.Unlock()

	if timeout == 0 {
		return false
	}
	if timeout < 0 {
		<-ch
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
		return true
	case <-timer.C:
		return false
	}
}

// Close stops all voices and releases the device binding. The engine cannot
// be restarted afterwards; further control calls return ErrClosed. Close is
// idempotent.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	for vi := range e.voices {
		v := &e.voices[vi]
		v.active = false
		v.pos = 0
		v.buf = nil
	}
	e.setDoneLocked()
	wasStarted := e.started
	e.started = false
	e.mu.Unlock()

	if e.binding == nil || !wasStarted {
		return nil
	}
	if err := e.binding.Stop(); err != nil {
		return fmt.Errorf("failed to stop output device: %w", err)
	}
	if err := e.binding.Close(); err != nil {
		return fmt.Errorf("failed to close output device: %w", err)
	}
	return nil
}

// renderBlock fills one output block on the device clock. Holds the lock for
// the whole mix pass; no allocation happens here unless the device asks for
// a larger block than configured.
func (e *Engine) renderBlock(out []int16) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(out) > len(e.mix) {
		e.mix = make([]float32, len(out))
	}
	if mixBlock(out, e.mix[:len(out)], &e.voices) {
		e.setDoneLocked()
	}
}

// setDoneLocked sets the completion flag exactly once per cleared period.
// Caller holds e.mu.
func (e *Engine) setDoneLocked() {
	if !e.done {
		e.done = true
		close(e.doneCh)
	}
}
