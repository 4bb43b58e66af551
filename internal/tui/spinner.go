package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// LoadingSpinner is the indicator shown while the site list or a favicon is
// in flight. At most one tick chain is alive at a time: Start is a no-op
// while running, and Advance ends the chain once nothing is loading.
type LoadingSpinner struct {
	frame   int
	running bool
}

// Start begins the tick chain, or returns a nil command when it is already
// running.
func (s LoadingSpinner) Start() (LoadingSpinner, tea.Cmd) {
	if s.running {
		return s, nil
	}
	s.running = true
	return s, s.Tick()
}

// Advance handles a spinnerTickMsg: it moves to the next frame and keeps the
// chain alive only while busy.
func (s LoadingSpinner) Advance(busy bool) (LoadingSpinner, tea.Cmd) {
	s.frame = (s.frame + 1) % len(spinnerFrames)
	if !busy {
		s.running = false
		return s, nil
	}
	s.running = true
	return s, s.Tick()
}

func (s LoadingSpinner) Running() bool {
	return s.running
}

func (s LoadingSpinner) View() string {
	return spinnerFrames[s.frame%len(spinnerFrames)]
}

func (s LoadingSpinner) Tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}
