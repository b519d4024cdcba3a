// ABOUTME: Entry point for the pre-experiment level test
// ABOUTME: Interactive loop calibration of background noise against target
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/percept-lab/stimulus-go/internal/events"
	"github.com/percept-lab/stimulus-go/pkg/audio"
	"github.com/percept-lab/stimulus-go/pkg/audio/decode"
	"github.com/percept-lab/stimulus-go/pkg/audio/resample"
	"github.com/percept-lab/stimulus-go/pkg/engine"
	"github.com/percept-lab/stimulus-go/pkg/engine/output"
)

var (
	backgroundFile = flag.String("background", "", "Background noise file to loop")
	targetFile     = flag.String("target", "", "Target sound file to loop")
	sampleRate     = flag.Int("rate", engine.DefaultSampleRate, "Playback sample rate")
	blockSize      = flag.Int("block", engine.DefaultBlockSize, "Frames per callback block")
	saveDir        = flag.String("save-dir", ".", "Folder for event timestamp logs")
	subject        = flag.String("subject", "pilot", "Subject identifier for log file names")
)

func main() {
	flag.Parse()
	if *backgroundFile == "" || *targetFile == "" {
		log.Fatal("usage: leveltest -background <noise> -target <sound>")
	}

	background, err := prepare(*backgroundFile, *sampleRate)
	if err != nil {
		log.Fatalf("Failed to load background: %v", err)
	}
	target, err := prepare(*targetFile, *sampleRate)
	if err != nil {
		log.Fatalf("Failed to load target: %v", err)
	}

	eng, err := engine.New(engine.Config{SampleRate: *sampleRate, BlockSize: *blockSize}, output.NewMalgo())
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
	screen := logger.Screen("level_test")

	m := model{
		eng:        eng,
		screen:     screen,
		background: background,
		target:     target,
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}

	if err := screen.Save(); err != nil {
		log.Fatalf("Failed to save event log: %v", err)
	}
}

func prepare(path string, rate int) (audio.Clip, error) {
	clip, err := decode.File(path)
	if err != nil {
		return audio.Clip{}, err
	}
	clip = clip.Mono()
	return resample.To(clip, rate)
}
