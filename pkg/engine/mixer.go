// ABOUTME: Block mixer for the voice set
// ABOUTME: Pure render function invoked inside the device callback
package engine

// mixBlock renders the next block of frames from the voice set into out.
// mix is a caller-owned scratch accumulator of the same length as out.
// Returns whether the oneshot voice finished during this block.
//
// The function does bounded work proportional to len(out) and the fixed
// voice count. It never allocates and never reads past a buffer: a voice
// with an empty buffer is deactivated instead of mixed, so loop wrapping
// always makes progress.
func mixBlock(out []int16, mix []float32, voices *[numVoices]voice) bool {
	for i := range mix {
		mix[i] = 0
	}

	finished := false
	for vi := range voices {
		v := &voices[vi]
		if !v.active {
			continue
		}

		if len(v.buf) == 0 {
			v.active = false
			v.pos = 0
			if vi == voiceOneshot {
				finished = true
			}
			continue
		}

		if !v.loop {
			n := len(v.buf) - v.pos
			if n > len(mix) {
				n = len(mix)
			}
			for i := 0; i < n; i++ {
				mix[i] += float32(v.buf[v.pos+i]) / 32768.0
			}
			v.pos += n
			if n < len(mix) {
				// Buffer exhausted inside this block.
				v.active = false
				v.pos = 0
				if vi == voiceOneshot {
					finished = true
				}
			}
			continue
		}

		// Looping voice: copy to end of buffer, wrap to 0, repeat until
		// the block is full.
		written := 0
		for written < len(mix) {
			n := len(v.buf) - v.pos
			if n > len(mix)-written {
				n = len(mix) - written
			}
			for i := 0; i < n; i++ {
				mix[written+i] += float32(v.buf[v.pos+i]) / 32768.0
			}
			written += n
			v.pos += n
			if v.pos >= len(v.buf) {
				v.pos = 0
			}
		}
	}

	// Hard clip: summed voices can exceed full scale.
	for i, s := range mix {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		out[i] = int16(s * 32767.0)
	}

	return finished
}
