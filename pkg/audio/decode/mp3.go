// ABOUTME: MP3 stimulus decoder
// ABOUTME: Decodes MP3 streams to int16 clips via go-mp3
package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/percept-lab/stimulus-go/pkg/audio"
)

// MP3 decodes an MP3 stream. go-mp3 always emits stereo 16-bit LE at the
// source sample rate, so the resulting clip has two channels.
func MP3(r io.Reader) (audio.Clip, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	data, err := io.ReadAll(d)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("mp3 decode error: %w", err)
	}

	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}

	return audio.Clip{
		Samples:  samples,
		Rate:     d.SampleRate(),
		Channels: 2,
	}, nil
}
