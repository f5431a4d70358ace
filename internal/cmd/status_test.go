package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

func TestFormatStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	target := 25

	tests := []struct {
		name string
		snap domain.SessionSnapshot
		want string
	}{
		{
			name: "idle",
			snap: domain.SessionSnapshot{},
			want: "○ idle",
		},
		{
			name: "countdown",
			snap: domain.SessionSnapshot{
				Active:        &domain.Session{ID: 1, StartTime: now.Add(-10 * time.Minute)},
				TargetMinutes: &target,
			},
			want: "● 15:00",
		},
		{
			name: "overtime",
			snap: domain.SessionSnapshot{
				Active:        &domain.Session{ID: 1, StartTime: now.Add(-27 * time.Minute)},
				TargetMinutes: &target,
			},
			want: "◐ +02:00",
		},
		{
			name: "open-ended",
			snap: domain.SessionSnapshot{
				Active: &domain.Session{ID: 1, StartTime: now.Add(-90 * time.Second)},
			},
			want: "● 01:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatStatus(tt.snap, now))
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0m", formatSeconds(30))
	assert.Equal(t, "25m", formatSeconds(1500))
	assert.Equal(t, "1h 30m", formatSeconds(5400))
}

func TestPrintStructured_TableFallsThrough(t *testing.T) {
	done, err := printStructured("table", map[string]int{"a": 1})
	assert.False(t, done)
	assert.NoError(t, err)
}
