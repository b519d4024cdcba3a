// ABOUTME: Stimulus file decoding package
// ABOUTME: Loads WAV, MP3 and Ogg Vorbis files into PCM clips
// Package decode loads stimulus files into audio.Clip values.
//
// Dispatch is by file extension. All decoders read the whole file into
// memory: stimuli are short and the engine needs the complete buffer up
// front anyway.
//
// Example:
//
//	clip, err := decode.File("stimuli/target_03.wav")
//	if err != nil {
//	    log.Fatalf("failed to load stimulus: %v", err)
//	}
//	clip = clip.Mono()
package decode
