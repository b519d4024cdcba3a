// ABOUTME: Ogg Vorbis stimulus decoder
// ABOUTME: Decodes Vorbis streams to int16 clips via jfreymuth/oggvorbis
package decode

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/percept-lab/stimulus-go/pkg/audio"
)

// Vorbis decodes an Ogg Vorbis stream. The decoder's float output is
// converted to 16-bit with clamping.
func Vorbis(r io.Reader) (audio.Clip, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("failed to decode vorbis: %w", err)
	}

	samples := make([]int16, len(data))
	for i, v := range data {
		samples[i] = audio.FloatToSample(v)
	}

	return audio.Clip{
		Samples:  samples,
		Rate:     format.SampleRate,
		Channels: format.Channels,
	}, nil
}
