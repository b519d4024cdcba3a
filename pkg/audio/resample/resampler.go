// ABOUTME: Offline clip resampler
// ABOUTME: Catmull-Rom interpolation over interleaved int16 frames
package resample

import (
	"fmt"
	"math"

	"github.com/percept-lab/stimulus-go/pkg/audio"
)

// To converts a clip to dstRate. Clips already at the target rate pass
// through unchanged. Channel count is preserved; conversion happens per
// channel over interleaved frames.
func To(c audio.Clip, dstRate int) (audio.Clip, error) {
	if dstRate <= 0 {
		return audio.Clip{}, fmt.Errorf("invalid target rate: %d", dstRate)
	}
	if c.Rate <= 0 {
		return audio.Clip{}, fmt.Errorf("clip has no sample rate")
	}
	if c.Rate == dstRate || len(c.Samples) == 0 {
		out := c
		out.Rate = dstRate
		return out, nil
	}

	channels := c.Channels
	if channels < 1 {
		channels = 1
	}
	inFrames := c.Frames()
	outFrames := int(math.Round(float64(inFrames) * float64(dstRate) / float64(c.Rate)))
	ratio := float64(c.Rate) / float64(dstRate)

	out := make([]int16, outFrames*channels)
	for f := 0; f < outFrames; f++ {
		pos := float64(f) * ratio
		base := int(pos)
		frac := float32(pos - float64(base))

		for ch := 0; ch < channels; ch++ {
			y0 := frameSample(c.Samples, base-1, ch, channels, inFrames)
			y1 := frameSample(c.Samples, base, ch, channels, inFrames)
			y2 := frameSample(c.Samples, base+1, ch, channels, inFrames)
			y3 := frameSample(c.Samples, base+2, ch, channels, inFrames)
			out[f*channels+ch] = audio.FloatToSample(cubicInterpolate(y0, y1, y2, y3, frac))
		}
	}

	return audio.Clip{Samples: out, Rate: dstRate, Channels: channels}, nil
}

// frameSample fetches one channel of one frame as a normalized float,
// clamping the frame index to the clip edges.
func frameSample(samples []int16, frame, ch, channels, frames int) float32 {
	if frame < 0 {
		frame = 0
	} else if frame >= frames {
		frame = frames - 1
	}
	return audio.SampleToFloat(samples[frame*channels+ch])
}

// cubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples at fractional position x between y1 and y2 (0 <= x <= 1).
func cubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
