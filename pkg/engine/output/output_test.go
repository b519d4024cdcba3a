// ABOUTME: Device binding tests
// ABOUTME: Verifies interface compliance, manual clock and the oto reader
package output

import (
	"encoding/binary"
	"testing"
)

func TestBackendsImplementBinding(t *testing.T) {
	var _ Binding = (*Malgo)(nil)
	var _ Binding = (*Oto)(nil)
	var _ Binding = (*Manual)(nil)
}

func TestManualStep(t *testing.T) {
	m := NewManual()

	calls := 0
	render := func(out []int16) {
		calls++
		for i := range out {
			out[i] = int16(i)
		}
	}

	if err := m.Start(44100, 8, render); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := m.Start(44100, 8, render); err == nil {
		t.Error("second Start should fail")
	}

	out := m.Step()
	if calls != 1 {
		t.Fatalf("expected 1 render call, got %d", calls)
	}
	if len(out) != 8 {
		t.Fatalf("expected 8 frames, got %d", len(out))
	}
	for i, s := range out {
		if s != int16(i) {
			t.Errorf("frame %d: expected %d, got %d", i, i, s)
		}
	}

	big := m.StepFrames(32)
	if len(big) != 32 {
		t.Fatalf("expected 32 frames, got %d", len(big))
	}

	if err := m.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if m.Step() != nil {
		t.Error("Step after Stop should render nothing")
	}
}

func TestBlockReaderProducesWholeBlocks(t *testing.T) {
	blockSize := 4
	var counter int16
	render := func(out []int16) {
		for i := range out {
			out[i] = counter
			counter++
		}
	}

	r := &blockReader{
		render: render,
		block:  make([]int16, blockSize),
		raw:    make([]byte, blockSize*2),
	}

	// Read across block boundaries in odd-sized chunks; the sample stream
	// must stay contiguous.
	var got []byte
	for len(got) < 20 {
		p := make([]byte, 3)
		n, err := r.Read(p)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		got = append(got, p[:n]...)
	}

	for i := 0; i < 10; i++ {
		s := int16(binary.LittleEndian.Uint16(got[i*2:]))
		if s != int16(i) {
			t.Fatalf("sample %d: expected %d, got %d", i, i, s)
		}
	}
}
