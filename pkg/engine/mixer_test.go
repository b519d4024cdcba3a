// ABOUTME: Tests for the block mixer
// ABOUTME: Verifies copy, wrap, completion and clipping behavior
package engine

import "testing"

// scale mirrors the mixer's int16 -> float -> int16 round trip for a single
// unclipped voice.
func scale(s int16) int16 {
	f := float32(s) / 32768.0
	return int16(f * 32767.0)
}

func mixOnce(voices *[numVoices]voice, frames int) ([]int16, bool) {
	out := make([]int16, frames)
	mix := make([]float32, frames)
	finished := mixBlock(out, mix, voices)
	return out, finished
}

func TestMixOneShotShorterThanBlock(t *testing.T) {
	var voices [numVoices]voice
	buf := make([]int16, 100)
	for i := range buf {
		buf[i] = 16000
	}
	voices[voiceOneshot] = voice{buf: buf, active: true}

	out, finished := mixOnce(&voices, 256)

	if !finished {
		t.Fatal("expected oneshot to finish within the block")
	}
	want := scale(16000)
	for i := 0; i < 100; i++ {
		if out[i] != want {
			t.Fatalf("sample %d: expected %d, got %d", i, want, out[i])
		}
	}
	for i := 100; i < 256; i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d: expected silence, got %d", i, out[i])
		}
	}
	if voices[voiceOneshot].active {
		t.Error("oneshot still active after completion")
	}
	if voices[voiceOneshot].pos != 0 {
		t.Errorf("oneshot position not reset: %d", voices[voiceOneshot].pos)
	}
}

func TestMixOneShotSpansBlocks(t *testing.T) {
	var voices [numVoices]voice
	buf := make([]int16, 300)
	for i := range buf {
		buf[i] = 8000
	}
	voices[voiceOneshot] = voice{buf: buf, active: true}

	if _, finished := mixOnce(&voices, 256); finished {
		t.Fatal("oneshot finished too early")
	}
	if voices[voiceOneshot].pos != 256 {
		t.Fatalf("expected position 256, got %d", voices[voiceOneshot].pos)
	}

	out, finished := mixOnce(&voices, 256)
	if !finished {
		t.Fatal("oneshot did not finish on second block")
	}
	want := scale(8000)
	for i := 0; i < 44; i++ {
		if out[i] != want {
			t.Fatalf("sample %d: expected %d, got %d", i, want, out[i])
		}
	}
	for i := 44; i < 256; i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d: expected silence, got %d", i, out[i])
		}
	}
}

func TestMixLoopWrapsAcrossBlocks(t *testing.T) {
	var voices [numVoices]voice
	voices[voiceBackground] = voice{buf: []int16{1000, 2000, 3000}, active: true, loop: true}

	// Three blocks of two frames walk the 3-sample buffer with wrap.
	expected := [][]int16{
		{scale(1000), scale(2000)},
		{scale(3000), scale(1000)},
		{scale(2000), scale(3000)},
	}

	for bi, want := range expected {
		out, finished := mixOnce(&voices, 2)
		if finished {
			t.Fatal("loop voice must never signal completion")
		}
		for i := range want {
			if out[i] != want[i] {
				t.Errorf("block %d sample %d: expected %d, got %d", bi, i, want[i], out[i])
			}
		}
	}

	if voices[voiceBackground].pos != 0 {
		t.Errorf("expected wrapped position 0, got %d", voices[voiceBackground].pos)
	}
}

func TestMixLoopSingleSampleBuffer(t *testing.T) {
	var voices [numVoices]voice
	voices[voiceTarget] = voice{buf: []int16{4000}, active: true, loop: true}

	out, _ := mixOnce(&voices, 8)

	want := scale(4000)
	for i, s := range out {
		if s != want {
			t.Fatalf("sample %d: expected %d, got %d", i, want, s)
		}
	}
}

func TestMixEmptyBufferDeactivates(t *testing.T) {
	var voices [numVoices]voice
	voices[voiceTarget] = voice{active: true, loop: true}
	voices[voiceOneshot] = voice{active: true}

	out, finished := mixOnce(&voices, 16)

	if !finished {
		t.Error("empty oneshot buffer must signal completion")
	}
	if voices[voiceTarget].active {
		t.Error("empty loop voice still active")
	}
	for i, s := range out {
		if s != 0 {
			t.Fatalf("sample %d: expected silence, got %d", i, s)
		}
	}
}

func TestMixSumsAndClips(t *testing.T) {
	var voices [numVoices]voice
	voices[voiceBackground] = voice{buf: []int16{8000, 30000, -30000}, active: true, loop: true}
	voices[voiceTarget] = voice{buf: []int16{4000, 30000, -30000}, active: true, loop: true}

	out, _ := mixOnce(&voices, 3)

	// Linear sum below full scale.
	wantF := (float32(8000)/32768.0 + float32(4000)/32768.0) * 32767.0
	want := int16(wantF)
	if out[0] != want {
		t.Errorf("expected mixed sample %d, got %d", want, out[0])
	}
	// Hard clip at both rails.
	if out[1] != 32767 {
		t.Errorf("expected positive clip 32767, got %d", out[1])
	}
	if out[2] != -32767 {
		t.Errorf("expected negative clip -32767, got %d", out[2])
	}
}

func TestMixInactiveVoicesSilent(t *testing.T) {
	var voices [numVoices]voice
	voices[voiceBackground] = voice{buf: []int16{10000}, loop: true}

	out, finished := mixOnce(&voices, 4)
	if finished {
		t.Error("no oneshot played, nothing should finish")
	}
	for i, s := range out {
		if s != 0 {
			t.Fatalf("sample %d: expected silence, got %d", i, s)
		}
	}
	if voices[voiceBackground].pos != 0 {
		t.Error("inactive voice advanced")
	}
}
