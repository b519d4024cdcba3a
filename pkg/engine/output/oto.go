// ABOUTME: Oto-based device binding implementation
// ABOUTME: Pulls render blocks through a persistent oto/v3 player
package output

import (
	"encoding/binary"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Oto binding using the oto/v3 library. Oto pulls from an io.Reader instead
// of firing a data callback, so the binding adapts the render function into
// a reader that produces one block per render call. The oto buffer size is
// set to one block to keep latency close to the malgo backend.
type Oto struct {
	mu     sync.Mutex
	otoCtx *oto.Context
	player *oto.Player
}

// NewOto creates an unopened oto binding.
func NewOto() *Oto {
	return &Oto{}
}

// Start opens a mono S16 player fed by the render callback.
func (o *Oto) Start(sampleRate, blockSize int, render RenderFunc) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player != nil {
		return fmt.Errorf("output already started")
	}

	// oto allows one context per process; create it lazily and keep it.
	if o.otoCtx == nil {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   time.Second * time.Duration(blockSize) / time.Duration(sampleRate),
		}
		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			return fmt.Errorf("failed to create oto context: %w", err)
		}
		<-readyChan
		o.otoCtx = ctx
	}

	o.player = o.otoCtx.NewPlayer(&blockReader{
		render: render,
		block:  make([]int16, blockSize),
		raw:    make([]byte, blockSize*2),
	})
	o.player.Play()

	log.Printf("Audio output started: %dHz mono, block %d frames (oto)", sampleRate, blockSize)
	return nil
}

// Stop halts playback and drops the player.
func (o *Oto) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player == nil {
		return nil
	}
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("failed to close oto player: %w", err)
	}
	o.player = nil
	return nil
}

// Close suspends the oto context. The context itself cannot be released.
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player != nil {
		if err := o.player.Close(); err != nil {
			log.Printf("Warning: oto player close error: %v", err)
		}
		o.player = nil
	}
	if o.otoCtx != nil {
		if err := o.otoCtx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend oto context: %w", err)
		}
	}
	return nil
}

// blockReader adapts a RenderFunc to io.Reader. Each render call produces
// one block; partial reads carry the remainder into the next call.
type blockReader struct {
	render  RenderFunc
	block   []int16
	raw     []byte
	pending []byte
}

func (r *blockReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.pending) == 0 {
			r.render(r.block)
			for i, sample := range r.block {
				binary.LittleEndian.PutUint16(r.raw[i*2:], uint16(sample))
			}
			r.pending = r.raw
		}
		c := copy(p[n:], r.pending)
		r.pending = r.pending[c:]
		n += c
	}
	return n, nil
}
