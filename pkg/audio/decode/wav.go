// ABOUTME: WAV stimulus decoder
// ABOUTME: Decodes PCM WAV files to int16 clips via go-audio
package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/percept-lab/stimulus-go/pkg/audio"
)

// WAV decodes a PCM WAV stream. 8, 16, 24 and 32-bit sources are reduced to
// 16-bit; the stimulus corpus itself is 16-bit throughout.
func WAV(r io.ReadSeeker) (audio.Clip, error) {
	d := wav.NewDecoder(r)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return audio.Clip{}, fmt.Errorf("failed to decode wav: %w", err)
	}
	if buf.Format == nil {
		return audio.Clip{}, fmt.Errorf("wav stream has no format chunk")
	}

	samples := make([]int16, len(buf.Data))
	switch d.BitDepth {
	case 8:
		for i, v := range buf.Data {
			samples[i] = int16((v - 128) << 8)
		}
	case 16:
		for i, v := range buf.Data {
			samples[i] = int16(v)
		}
	case 24:
		for i, v := range buf.Data {
			samples[i] = int16(v >> 8)
		}
	case 32:
		for i, v := range buf.Data {
			samples[i] = int16(v >> 16)
		}
	default:
		return audio.Clip{}, fmt.Errorf("unsupported wav bit depth: %d", d.BitDepth)
	}

	return audio.Clip{
		Samples:  samples,
		Rate:     buf.Format.SampleRate,
		Channels: buf.Format.NumChannels,
	}, nil
}
