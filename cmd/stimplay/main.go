// ABOUTME: Entry point for one-shot stimulus playback
// ABOUTME: Loads, prepares and plays a stimulus file through the engine
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/percept-lab/stimulus-go/internal/events"
	"github.com/percept-lab/stimulus-go/pkg/audio"
	"github.com/percept-lab/stimulus-go/pkg/audio/decode"
	"github.com/percept-lab/stimulus-go/pkg/audio/resample"
	"github.com/percept-lab/stimulus-go/pkg/engine"
	"github.com/percept-lab/stimulus-go/pkg/engine/output"
)

var (
	file       = flag.String("file", "", "Stimulus file to play (wav/mp3/ogg)")
	loopFile   = flag.String("loop", "", "Optional background noise file to loop during playback")
	sampleRate = flag.Int("rate", engine.DefaultSampleRate, "Playback sample rate")
	blockSize  = flag.Int("block", engine.DefaultBlockSize, "Frames per callback block")
	backend    = flag.String("backend", "malgo", "Output backend: malgo or oto")
	fadeMs     = flag.Float64("fade-ms", 10, "Fade ramp length for click suppression (0 disables)")
	saveDir    = flag.String("save-dir", ".", "Folder for event timestamp logs")
	subject    = flag.String("subject", "pilot", "Subject identifier for log file names")
)

func main() {
	flag.Parse()
	if *file == "" {
		log.Fatal("usage: stimplay -file <stimulus> [-loop <noise>]")
	}

	binding, err := newBinding(*backend)
	if err != nil {
		log.Fatalf("Bad backend: %v", err)
	}

	eng, err := engine.New(engine.Config{SampleRate: *sampleRate, BlockSize: *blockSize}, binding)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	if err := eng.Start(); err != nil {
		log.Fatalf("Failed to start engine: %v", err)
	}
	defer eng.Close()

	logger, err := events.NewLogger(*saveDir, *subject)
	if err != nil {
		log.Fatalf("Failed to create event logger: %v", err)
	}
	log.Printf("Session %s", logger.Session())
	screen := logger.Screen("stimplay")

	if *loopFile != "" {
		noise, err := prepare(*loopFile, *sampleRate, 0)
		if err != nil {
			log.Fatalf("Failed to load loop file: %v", err)
		}
		if err := eng.StartLoop(engine.Background, noise); err != nil {
			log.Fatalf("Failed to start background loop: %v", err)
		}
		screen.Log("loop_start", *loopFile)
		log.Printf("Looping %s (%v per cycle)", *loopFile, noise.Duration())
	}

	clip, err := prepare(*file, *sampleRate, *fadeMs)
	if err != nil {
		log.Fatalf("Failed to load stimulus: %v", err)
	}

	dur, err := eng.Play(clip)
	if err != nil {
		log.Fatalf("Failed to play stimulus: %v", err)
	}
	screen.Log("play", *file)
	log.Printf("Playing %s (%v)", *file, dur)

	if eng.WaitDone(dur + time.Second) {
		screen.Log("done", "")
		log.Printf("Playback complete")
	} else {
		screen.Log("timeout", "")
		log.Printf("Timed out waiting for completion")
	}

	eng.Stop()
	if err := screen.Save(); err != nil {
		log.Fatalf("Failed to save event log: %v", err)
	}
}

// prepare loads a stimulus and brings it to engine format: mono, target
// rate, optional fade ramps.
func prepare(path string, rate int, fadeMs float64) (audio.Clip, error) {
	clip, err := decode.File(path)
	if err != nil {
		return audio.Clip{}, err
	}

	clip = clip.Mono()
	clip, err = resample.To(clip, rate)
	if err != nil {
		return audio.Clip{}, err
	}

	if fadeMs > 0 {
		fade := time.Duration(fadeMs * float64(time.Millisecond))
		clip = clip.ApplyFades(fade, fade)
	}
	return clip, nil
}

func newBinding(name string) (output.Binding, error) {
	switch name {
	case "malgo":
		return output.NewMalgo(), nil
	case "oto":
		return output.NewOto(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want malgo or oto)", name)
	}
}
