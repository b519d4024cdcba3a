// ABOUTME: Audio type definitions
// ABOUTME: Defines PCM clips and sample conversion functions
package audio

import (
	"math"
	"time"
)

const (
	// 16-bit PCM amplitude range
	MaxSample = 32767
	MinSample = -32768
)

// Clip holds decoded PCM audio as interleaved signed 16-bit samples.
// A zero-length clip is valid and represents silence of zero duration.
type Clip struct {
	Samples  []int16
	Rate     int // frames per second
	Channels int // 1 = mono, 2 = stereo
}

// Frames returns the number of sample frames in the clip.
func (c Clip) Frames() int {
	if c.Channels <= 1 {
		return len(c.Samples)
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the playback time of the clip at its sample rate,
// rounded to the nearest millisecond.
func (c Clip) Duration() time.Duration {
	if c.Rate <= 0 {
		return 0
	}
	ms := math.Round(1000 * float64(c.Frames()) / float64(c.Rate))
	return time.Duration(ms) * time.Millisecond
}

// Mono collapses an interleaved multi-channel clip to one channel by
// averaging the channels of each frame. Mono clips pass through unchanged.
func (c Clip) Mono() Clip {
	if c.Channels <= 1 {
		out := c
		out.Channels = 1
		return out
	}

	frames := c.Frames()
	mono := make([]int16, frames)
	for f := 0; f < frames; f++ {
		sum := 0
		base := f * c.Channels
		for ch := 0; ch < c.Channels; ch++ {
			sum += int(c.Samples[base+ch])
		}
		mono[f] = int16(sum / c.Channels)
	}

	return Clip{Samples: mono, Rate: c.Rate, Channels: 1}
}

// SampleToFloat converts an int16 sample to a normalized float in [-1, 1).
func SampleToFloat(s int16) float32 {
	return float32(s) / 32768.0
}

// FloatToSample converts a normalized float to int16, clamping to [-1, 1].
func FloatToSample(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 on both sides so +1.0 cannot overflow
	return int16(x * 32767.0)
}
