// ABOUTME: Bubbletea model for the level test
// ABOUTME: Maps key presses to loop control and target gain changes
package main

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/percept-lab/stimulus-go/internal/events"
	"github.com/percept-lab/stimulus-go/pkg/audio"
	"github.com/percept-lab/stimulus-go/pkg/engine"
)

// Target gain bounds relative to the prepared clip level.
const (
	minGainDB = -24.0
	maxGainDB = 6.0
	stepDB    = 1.0
)

// model holds the level test state. The engine does the playback; the model
// only issues control calls and mirrors the loop flags for display.
type model struct {
	eng    *engine.Engine
	screen *events.ScreenLogger

	background audio.Clip
	target     audio.Clip
	targetDB   float64

	status string
}

// Init starts nothing; loops begin on key press.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.eng.Stop()
		m.screen.Log("level_test_end", "")
		return m, tea.Quit

	case "b":
		m = m.toggle(engine.Background, m.background)

	case "t":
		m = m.toggle(engine.Target, m.targetClip())

	case "up":
		m = m.adjustTarget(stepDB)

	case "down":
		m = m.adjustTarget(-stepDB)
	}

	return m, nil
}

// toggle flips one loop voice on or off.
func (m model) toggle(name engine.VoiceName, clip audio.Clip) model {
	looping, err := m.eng.IsLooping(name)
	if err != nil {
		m.status = err.Error()
		return m
	}

	if looping {
		if err := m.eng.StopLoop(name); err != nil {
			m.status = err.Error()
			return m
		}
		m.screen.Log("loop_stop", string(name))
		m.status = fmt.Sprintf("%s stopped", name)
		return m
	}

	if err := m.eng.StartLoop(name, clip); err != nil {
		m.status = err.Error()
		return m
	}
	m.screen.Log("loop_start", string(name))
	m.status = fmt.Sprintf("%s looping", name)
	return m
}

// adjustTarget nudges the target gain and restarts the loop at the new
// level if it is currently playing. The loop restarts at position 0, which
// is fine for calibration noise.
func (m model) adjustTarget(deltaDB float64) model {
	db := m.targetDB + deltaDB
	if db < minGainDB {
		db = minGainDB
	} else if db > maxGainDB {
		db = maxGainDB
	}
	m.targetDB = db

	if looping, _ := m.eng.IsLooping(engine.Target); looping {
		if err := m.eng.StartLoop(engine.Target, m.targetClip()); err != nil {
			m.status = err.Error()
			return m
		}
	}
	m.screen.Log("target_gain", fmt.Sprintf("%+.0fdB", db))
	m.status = fmt.Sprintf("target gain %+.0f dB", db)
	return m
}

// targetClip returns the target clip at the current gain.
func (m model) targetClip() audio.Clip {
	if m.targetDB == 0 {
		return m.target
	}
	return m.target.Gain(math.Pow(10, m.targetDB/20))
}

// View renders the control panel.
func (m model) View() string {
	bg, _ := m.eng.IsLooping(engine.Background)
	tg, _ := m.eng.IsLooping(engine.Target)

	s := "Level Test\n\n"
	s += fmt.Sprintf("  [b] background noise  %s\n", onOff(bg))
	s += fmt.Sprintf("  [t] target sound      %s\n", onOff(tg))
	s += fmt.Sprintf("  [↑/↓] target gain     %+.0f dB\n\n", m.targetDB)
	if m.status != "" {
		s += "  " + m.status + "\n\n"
	}
	s += "  q to quit\n"
	return s
}

func onOff(active bool) string {
	if active {
		return "ON"
	}
	return "off"
}
