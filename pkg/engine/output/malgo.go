// ABOUTME: Malgo-based device binding implementation
// ABOUTME: Uses miniaudio via malgo for low-latency callback playback
package output

import (
	"fmt"
	"log"
	"sync"

	"github.com/gen2brain/malgo"
)

// Malgo binding using the malgo/miniaudio library. The device period is
// pinned to the engine's block size so every data callback maps to exactly
// one render call.
type Malgo struct {
	mu       sync.Mutex
	malgoCtx *malgo.AllocatedContext
	device   *malgo.Device
	render   RenderFunc
	block    []int16
}

// NewMalgo creates an unopened malgo binding.
func NewMalgo() *Malgo {
	return &Malgo{}
}

// Start opens a mono S16 playback device and begins the callback stream.
func (m *Malgo) Start(sampleRate, blockSize int, render RenderFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device != nil {
		return fmt.Errorf("output already started")
	}

	if m.malgoCtx == nil {
		ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
		if err != nil {
			return fmt.Errorf("failed to initialize malgo context: %w", err)
		}
		m.malgoCtx = ctx
	}

	m.render = render
	m.block = make([]int16, blockSize)

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatS16
	deviceConfig.Playback.Channels = 1
	deviceConfig.SampleRate = uint32(sampleRate)
	deviceConfig.PeriodSizeInFrames = uint32(blockSize)
	deviceConfig.PerformanceProfile = malgo.LowLatency
	deviceConfig.Alsa.NoMMap = 1

	onSamples := func(pOutputSample, pInputSamples []byte, frameCount uint32) {
		m.dataCallback(pOutputSample, frameCount)
	}

	device, err := malgo.InitDevice(m.malgoCtx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onSamples,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize playback device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		return fmt.Errorf("failed to start device: %w", err)
	}

	m.device = device
	log.Printf("Audio output started: %dHz mono, period %d frames (malgo)", sampleRate, blockSize)
	return nil
}

// dataCallback renders one block and writes it out little-endian.
func (m *Malgo) dataCallback(pOutput []byte, frameCount uint32) {
	if int(frameCount) > len(m.block) {
		m.block = make([]int16, frameCount)
	}
	block := m.block[:frameCount]
	m.render(block)

	for i, sample := range block {
		pOutput[i*2] = byte(sample)
		pOutput[i*2+1] = byte(sample >> 8)
	}
}

// Stop halts the device stream.
func (m *Malgo) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device == nil {
		return nil
	}
	if err := m.device.Stop(); err != nil {
		return fmt.Errorf("failed to stop device: %w", err)
	}
	return nil
}

// Close releases the device and the malgo context.
func (m *Malgo) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device != nil {
		m.device.Uninit()
		m.device = nil
	}
	if m.malgoCtx != nil {
		if err := m.malgoCtx.Uninit(); err != nil {
			log.Printf("Warning: malgo context uninit error: %v", err)
		}
		m.malgoCtx.Free()
		m.malgoCtx = nil
	}
	return nil
}
