package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		maxWidth int
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			maxWidth: 40,
			expected: "",
		},
		{
			name:     "fits on one line",
			err:      errors.New("session not found"),
			maxWidth: 40,
			expected: "Error: session not found",
		},
		{
			name:     "wraps onto a second line",
			err:      errors.New("failed to start session: connection refused"),
			maxWidth: 30,
			expected: "Error: failed to start\nsession: connection refused",
		},
		{
			name:     "blank message",
			err:      errors.New("   "),
			maxWidth: 40,
			expected: "Error: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.maxWidth))
		})
	}
}

func TestFormatErrorForDisplay_Truncates(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 40))

	result := formatErrorForDisplay(err, 30)

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasSuffix(result, truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), 30)
	}
}

func TestErrorManager_ClearOnlyCurrentError(t *testing.T) {
	em := NewErrorManager(10 * time.Second)

	em.SetError(errors.New("first"))
	stale := clearErrorMsg{generation: em.generation}
	em.SetError(errors.New("second"))

	em.HandleClear(stale)
	assert.EqualError(t, em.GetError(), "second")

	em.HandleClear(clearErrorMsg{generation: em.generation})
	assert.False(t, em.HasError())
}
