package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"naive is UTC", "2024-03-01T09:30:00", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"naive with micros", "2024-03-01T09:30:00.123456", time.Date(2024, 3, 1, 9, 30, 0, 123456000, time.UTC)},
		{"zulu", "2024-03-01T09:30:00Z", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"positive offset", "2024-03-01T10:30:00+01:00", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"negative offset", "2024-03-01T04:30:00-05:00", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"space separator", "2024-03-01 09:30:00", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServerTime(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseServerTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "yesterday", "2024-13-45T99:00:00"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseServerTime(input)
			assert.ErrorIs(t, err, ErrInvalidTimestamp)
		})
	}
}

func TestFormatServerTime_RoundTrips(t *testing.T) {
	original := time.Date(2024, 3, 1, 9, 30, 15, 250000000, time.FixedZone("CET", 3600))

	parsed, err := ParseServerTime(FormatServerTime(original))

	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}
