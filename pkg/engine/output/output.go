// ABOUTME: Device binding interface definition
// ABOUTME: Contract between the engine and hardware-clock backends
package output

// RenderFunc fills one block of mono 16-bit frames. It is invoked by the
// binding's audio clock once per period and must return before the period
// deadline.
type RenderFunc func(out []int16)

// Binding drives a RenderFunc from a hardware output stream.
type Binding interface {
	// Start opens the stream at the given format and begins invoking
	// render once per blockSize frames.
	Start(sampleRate, blockSize int, render RenderFunc) error

	// Stop halts the callback without releasing the device.
	Stop() error

	// Close releases the device. The binding cannot be restarted.
	Close() error
}
