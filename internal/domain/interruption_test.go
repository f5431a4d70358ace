package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInterruption_ComputesWindow(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	got, err := BuildInterruption(42, InterruptionDigital, "  Slack ping  ", 5, now)

	require.NoError(t, err)
	assert.Equal(t, 42, got.SessionID)
	assert.Equal(t, InterruptionDigital, got.Type)
	assert.Equal(t, "Slack ping", got.Description)
	assert.Equal(t, now, got.StartTime)
	assert.Equal(t, now.Add(5*time.Minute), got.EndTime)
}

func TestBuildInterruption_Validation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		typ         InterruptionType
		description string
		duration    int
		wantMsg     string
	}{
		{"empty description", InterruptionExternal, "", 1, "description is required"},
		{"whitespace description", InterruptionExternal, "   ", 1, "description is required"},
		{"too long description", InterruptionExternal, strings.Repeat("x", MaxDescriptionLength+1), 1, "at most"},
		{"zero duration", InterruptionExternal, "phone", 0, "at least 1 minute"},
		{"negative duration", InterruptionExternal, "phone", -3, "at least 1 minute"},
		{"legacy type", InterruptionUnknown, "phone", 1, "unknown interruption type"},
		{"made-up type", InterruptionType("meeting"), "phone", 1, "unknown interruption type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildInterruption(1, tt.typ, tt.description, tt.duration, now)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseInterruptionType(t *testing.T) {
	got, err := ParseInterruptionType(" Digital ")
	require.NoError(t, err)
	assert.Equal(t, InterruptionDigital, got)

	_, err = ParseInterruptionType("unknown")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInterruptionType_Labels(t *testing.T) {
	for _, typ := range SelectableInterruptionTypes {
		assert.NotEqual(t, "Unknown", typ.Label(), typ)
	}
	assert.Equal(t, InterruptionExternal, DefaultInterruptionType)
}
