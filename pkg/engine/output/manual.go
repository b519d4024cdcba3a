// ABOUTME: Manual clock binding for tests and offline rendering
// ABOUTME: Lets the caller invoke the render callback block by block
package output

import "fmt"

// Manual is a Binding with no hardware behind it: the caller advances the
// clock by calling Step. Engine tests and offline renders use it to observe
// exact block contents.
type Manual struct {
	render    RenderFunc
	blockSize int
	block     []int16
	started   bool
}

// NewManual creates an unstarted manual binding.
func NewManual() *Manual {
	return &Manual{}
}

// Start records the format and render callback. No clock starts running.
func (m *Manual) Start(sampleRate, blockSize int, render RenderFunc) error {
	if m.started {
		return fmt.Errorf("output already started")
	}
	m.render = render
	m.blockSize = blockSize
	m.block = make([]int16, blockSize)
	m.started = true
	return nil
}

// Step invokes the render callback for one block and returns the rendered
// frames. The returned slice is reused by the next Step.
func (m *Manual) Step() []int16 {
	if !m.started {
		return nil
	}
	m.render(m.block)
	return m.block
}

// StepFrames renders n frames in one callback, mimicking a device that asks
// for a different period than configured.
func (m *Manual) StepFrames(n int) []int16 {
	if !m.started {
		return nil
	}
	block := make([]int16, n)
	m.render(block)
	return block
}

// Stop pauses the manual clock.
func (m *Manual) Stop() error {
	m.started = false
	return nil
}

// Close releases nothing; the manual binding holds no resources.
func (m *Manual) Close() error {
	m.started = false
	return nil
}
