package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
	minErrorWidth  = 10
)

// clearErrorMsg is sent once the error clear delay has elapsed
type clearErrorMsg struct {
	generation int
}

// ErrorManager holds the error shown in the bottom bar and clears it after
// a delay. Setting a newer error invalidates pending clears of older ones.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	generation      int
}

// NewErrorManager creates an ErrorManager with the given auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError replaces the displayed error
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
	em.generation++
}

// ClearError removes the displayed error
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the displayed error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError reports whether an error is displayed
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay schedules clearing of the current error
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	gen := em.generation
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: gen}
	})
}

// HandleClear clears the error if msg belongs to the current one
func (em *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.generation == em.generation {
		em.ClearError()
	}
}

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines
// of maxWidth runes, "Error: " prefix included, ending in "..." when cut.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	lineWidth := max(maxWidth, minErrorWidth)
	firstWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), minErrorWidth)

	lines := make([]string, 0, maxErrorLines)
	current := ""
	width := firstWidth
	truncated := false

	for i, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current == "" || utf8.RuneCountInString(candidate) <= width {
			current = candidate
			continue
		}

		lines = append(lines, current)
		if len(lines) == maxErrorLines {
			truncated = i < len(words)
			current = ""
			break
		}
		current = word
		width = lineWidth
	}
	if current != "" {
		lines = append(lines, current)
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		room := lineWidth - utf8.RuneCountInString(truncationMark)
		if len(lines) == 1 {
			room = firstWidth - utf8.RuneCountInString(truncationMark)
		}
		if room > 0 && len(last) > room {
			last = last[:room]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
