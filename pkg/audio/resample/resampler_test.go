// ABOUTME: Tests for the clip resampler
// ABOUTME: Checks length scaling, passthrough and interpolation fidelity
package resample

import (
	"math"
	"testing"

	"github.com/percept-lab/stimulus-go/pkg/audio"
)

func sine(freq float64, rate, frames int) audio.Clip {
	samples := make([]int16, frames)
	for i := range samples {
		samples[i] = int16(10000 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return audio.Clip{Samples: samples, Rate: rate, Channels: 1}
}

func TestToPassthrough(t *testing.T) {
	clip := sine(440, 44100, 1000)
	out, err := To(clip, 44100)
	if err != nil {
		t.Fatalf("To failed: %v", err)
	}
	if len(out.Samples) != 1000 {
		t.Errorf("passthrough changed length: %d", len(out.Samples))
	}
	if out.Samples[500] != clip.Samples[500] {
		t.Error("passthrough changed sample data")
	}
}

func TestToOutputLength(t *testing.T) {
	tests := []struct {
		srcRate, dstRate, frames, want int
	}{
		{48000, 44100, 48000, 44100},
		{44100, 48000, 44100, 48000},
		{22050, 44100, 100, 200},
		{44100, 22050, 200, 100},
	}

	for _, tt := range tests {
		clip := sine(440, tt.srcRate, tt.frames)
		out, err := To(clip, tt.dstRate)
		if err != nil {
			t.Fatalf("To(%d->%d) failed: %v", tt.srcRate, tt.dstRate, err)
		}
		if out.Frames() != tt.want {
			t.Errorf("To(%d->%d): expected %d frames, got %d",
				tt.srcRate, tt.dstRate, tt.want, out.Frames())
		}
		if out.Rate != tt.dstRate {
			t.Errorf("output rate %d, expected %d", out.Rate, tt.dstRate)
		}
	}
}

func TestToPreservesWaveform(t *testing.T) {
	// A low-frequency sine should survive 48k -> 44.1k nearly unchanged.
	clip := sine(440, 48000, 4800)
	out, err := To(clip, 44100)
	if err != nil {
		t.Fatalf("To failed: %v", err)
	}

	// Compare against an ideal sine at the new rate, away from the edges.
	for i := 100; i < out.Frames()-100; i += 37 {
		ideal := 10000 * math.Sin(2*math.Pi*440*float64(i)/44100)
		got := float64(out.Samples[i])
		if math.Abs(got-ideal) > 200 {
			t.Fatalf("frame %d: expected ~%.0f, got %.0f", i, ideal, got)
		}
	}
}

func TestToStereoInterleaving(t *testing.T) {
	// Left channel constant 1000, right constant -1000; interpolation of a
	// constant signal must stay constant per channel.
	frames := 400
	samples := make([]int16, frames*2)
	for f := 0; f < frames; f++ {
		samples[f*2] = 1000
		samples[f*2+1] = -1000
	}
	clip := audio.Clip{Samples: samples, Rate: 48000, Channels: 2}

	out, err := To(clip, 44100)
	if err != nil {
		t.Fatalf("To failed: %v", err)
	}
	for f := 0; f < out.Frames(); f++ {
		l, r := out.Samples[f*2], out.Samples[f*2+1]
		if l < 998 || l > 1002 || r > -998 || r < -1002 {
			t.Fatalf("frame %d: channels bled together: L=%d R=%d", f, l, r)
		}
	}
}

func TestToInvalidArgs(t *testing.T) {
	if _, err := To(audio.Clip{Samples: []int16{1}, Rate: 44100, Channels: 1}, 0); err == nil {
		t.Error("expected error for zero target rate")
	}
	if _, err := To(audio.Clip{Samples: []int16{1}, Channels: 1}, 44100); err == nil {
		t.Error("expected error for clip without rate")
	}
}
