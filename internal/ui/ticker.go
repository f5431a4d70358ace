package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is one beat of a secondTicker
type tickMsg struct {
	generation int
	time       time.Time
}

// secondTicker drives the once-per-second timer refresh. Every Start and
// Stop bumps the generation, so a tick scheduled before the change is
// dropped by Accept and never reschedules itself.
type secondTicker struct {
	generation int
	interval   time.Duration
	running    bool
}

func newSecondTicker() *secondTicker {
	return &secondTicker{interval: time.Second}
}

// Start begins a new generation and schedules its first tick
func (t *secondTicker) Start() tea.Cmd {
	t.generation++
	t.running = true
	return t.schedule()
}

// Stop cancels the current generation
func (t *secondTicker) Stop() {
	t.generation++
	t.running = false
}

// Running reports whether ticks are being scheduled
func (t *secondTicker) Running() bool {
	return t.running
}

// Accept reports whether msg belongs to the live generation
func (t *secondTicker) Accept(msg tickMsg) bool {
	return t.running && msg.generation == t.generation
}

// Next schedules the following tick of the live generation
func (t *secondTicker) Next() tea.Cmd {
	if !t.running {
		return nil
	}
	return t.schedule()
}

func (t *secondTicker) schedule() tea.Cmd {
	gen := t.generation
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return tickMsg{generation: gen, time: now}
	})
}
