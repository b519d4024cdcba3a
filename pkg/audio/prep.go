// ABOUTME: Stimulus preparation helpers
// ABOUTME: RMS leveling and fade ramps applied before playback
package audio

import (
	"math"
	"time"
)

// RMS returns the root-mean-square amplitude of the clip, normalized to
// [0, 1]. An empty clip has an RMS of 0.
func (c Clip) RMS() float64 {
	if len(c.Samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range c.Samples {
		v := float64(s) / 32768.0
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(c.Samples)))
}

// NormalizeRMS scales the clip so its RMS amplitude matches target
// (normalized, e.g. 0.1). Samples that would exceed full scale are clamped.
// A silent clip is returned unchanged.
func (c Clip) NormalizeRMS(target float64) Clip {
	rms := c.RMS()
	if rms == 0 || target <= 0 {
		return c
	}

	gain := target / rms
	out := Clip{Samples: make([]int16, len(c.Samples)), Rate: c.Rate, Channels: c.Channels}
	for i, s := range c.Samples {
		scaled := float64(s) * gain
		if scaled > MaxSample {
			scaled = MaxSample
		} else if scaled < MinSample {
			scaled = MinSample
		}
		out.Samples[i] = int16(scaled)
	}
	return out
}

// Gain scales every sample by the given linear factor, clamping at full
// scale. Used for live level adjustment of loop voices.
func (c Clip) Gain(factor float64) Clip {
	out := Clip{Samples: make([]int16, len(c.Samples)), Rate: c.Rate, Channels: c.Channels}
	for i, s := range c.Samples {
		scaled := float64(s) * factor
		if scaled > MaxSample {
			scaled = MaxSample
		} else if scaled < MinSample {
			scaled = MinSample
		}
		out.Samples[i] = int16(scaled)
	}
	return out
}

// ApplyFades applies linear amplitude ramps over the first fadeIn and last
// fadeOut of the clip to suppress onset/offset clicks on short one-shot
// stimuli. Ramps longer than the clip are shortened to fit.
func (c Clip) ApplyFades(fadeIn, fadeOut time.Duration) Clip {
	out := Clip{Samples: append([]int16(nil), c.Samples...), Rate: c.Rate, Channels: c.Channels}
	frames := out.Frames()
	ch := out.Channels
	if ch <= 0 {
		ch = 1
	}

	in := int(fadeIn.Seconds() * float64(c.Rate))
	if in > frames {
		in = frames
	}
	for f := 0; f < in; f++ {
		g := float32(f) / float32(in)
		for k := 0; k < ch; k++ {
			i := f*ch + k
			out.Samples[i] = int16(float32(out.Samples[i]) * g)
		}
	}

	fo := int(fadeOut.Seconds() * float64(c.Rate))
	if fo > frames {
		fo = frames
	}
	for f := 0; f < fo; f++ {
		g := float32(f) / float32(fo)
		for k := 0; k < ch; k++ {
			i := (frames-1-f)*ch + k
			out.Samples[i] = int16(float32(out.Samples[i]) * g)
		}
	}

	return out
}
