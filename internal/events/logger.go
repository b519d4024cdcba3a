// ABOUTME: Experiment event logging
// ABOUTME: Writes per-screen CSV timelines keyed by session and subject
package events

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Logger collects timestamped events for one experiment session. One CSV
// file is written per screen into a timestamps_<subject> folder. Not safe
// for concurrent use; the control thread owns it.
type Logger struct {
	dir     string
	subject string
	session uuid.UUID
	start   time.Time
}

// NewLogger creates the timestamps folder for a subject and starts the
// session clock.
func NewLogger(saveDir, subject string) (*Logger, error) {
	dir := filepath.Join(saveDir, fmt.Sprintf("timestamps_%s", subject))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create timestamps folder: %w", err)
	}

	return &Logger{
		dir:     dir,
		subject: subject,
		session: uuid.New(),
		start:   time.Now(),
	}, nil
}

// Session returns the unique session identifier.
func (l *Logger) Session() string {
	return l.session.String()
}

// Screen starts an event timeline for one experiment screen. The screen
// presentation time is the timeline's first entry.
func (l *Logger) Screen(name string) *ScreenLogger {
	return &ScreenLogger{
		logger:    l,
		name:      name,
		presented: time.Now(),
	}
}

type entry struct {
	desc string
	at   time.Time
}

// ScreenLogger records the events of a single screen.
type ScreenLogger struct {
	logger    *Logger
	name      string
	presented time.Time
	events    []entry
}

// Log appends an event at the current time. The detail, when present, is
// joined to the type as "type:detail".
func (s *ScreenLogger) Log(eventType, detail string) {
	desc := eventType
	if detail != "" {
		desc = eventType + ":" + detail
	}
	s.events = append(s.events, entry{desc: desc, at: time.Now()})
}

// Save writes the screen's timeline to events_<screen>_<subject>.csv with
// nanosecond timestamps and deltas since the previous event.
func (s *ScreenLogger) Save() error {
	path := filepath.Join(s.logger.dir,
		fmt.Sprintf("events_%s_%s.csv", s.name, s.logger.subject))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create event log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Event", "Timestamp_ns", "ms_since_last", "s_since_last"}); err != nil {
		return fmt.Errorf("failed to write event log header: %w", err)
	}

	presentedNs := s.presented.Sub(s.logger.start).Nanoseconds()
	if err := w.Write([]string{"screen_presented", fmt.Sprintf("%d", presentedNs), "0", "0.0"}); err != nil {
		return fmt.Errorf("failed to write event row: %w", err)
	}

	prev := s.presented
	for _, e := range s.events {
		delta := e.at.Sub(prev)
		row := []string{
			e.desc,
			fmt.Sprintf("%d", e.at.Sub(s.logger.start).Nanoseconds()),
			fmt.Sprintf("%.3f", float64(delta.Nanoseconds())/1e6),
			fmt.Sprintf("%.6f", delta.Seconds()),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write event row: %w", err)
		}
		prev = e.at
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush event log: %w", err)
	}
	return nil
}
