package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestComputeElapsed_Floors(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{"same instant", start, 0},
		{"just under a second", start.Add(999 * time.Millisecond), 0},
		{"exactly one second", start.Add(time.Second), 1},
		{"ten minutes and a half second", start.Add(10*time.Minute + 500*time.Millisecond), 600},
		{"start in the future", start.Add(-5 * time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeElapsed(tt.now, start))
		})
	}
}

func TestComputeElapsed_NaiveTimestampIsUTC(t *testing.T) {
	start, err := ParseServerTime("2024-03-01T09:00:00")
	assert.NoError(t, err)

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	// 10:00 CET is 09:00 UTC
	assert.Equal(t, 0, ComputeElapsed(now, start))
}

func TestTimerState_Countdown(t *testing.T) {
	state := NewTimerState(300, intPtr(25))

	assert.Equal(t, 1200, state.Remaining())
	assert.False(t, state.IsOvertime())
	assert.Equal(t, TimerCountdown, state.Mode())
	assert.Equal(t, "20:00", state.Display())
	assert.Equal(t, "Focusing...", state.Mode().Label())
}

func TestTimerState_BoundaryIsNotOvertime(t *testing.T) {
	state := NewTimerState(1500, intPtr(25))

	assert.Equal(t, 0, state.Remaining())
	assert.False(t, state.IsOvertime())
	assert.Equal(t, "00:00", state.Display())
}

func TestTimerState_Overtime(t *testing.T) {
	state := NewTimerState(1530, intPtr(25))

	assert.True(t, state.IsOvertime())
	assert.Equal(t, 0, state.Remaining())
	assert.Equal(t, 30, state.OvertimeSeconds())
	assert.Equal(t, "+00:30", state.Display())
	assert.Equal(t, "Overtime", state.Mode().Label())
}

func TestTimerState_OpenEnded(t *testing.T) {
	tests := []struct {
		name   string
		target *int
	}{
		{"nil target", nil},
		{"zero target", intPtr(0)},
		{"negative target", intPtr(-5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewTimerState(4000, tt.target)

			assert.False(t, state.HasTarget())
			assert.False(t, state.IsOvertime())
			assert.Equal(t, 4000, state.Remaining())
			assert.Equal(t, "1:06:40", state.Display())
			assert.Equal(t, "Deep Work", state.Mode().Label())
		})
	}
}

func TestProgressOffset(t *testing.T) {
	c := RingCircumference

	tests := []struct {
		name     string
		state    TimerState
		expected float64
	}{
		{"fresh session has empty offset", NewTimerState(0, intPtr(10)), 0},
		{"half way", NewTimerState(300, intPtr(10)), c / 2},
		{"at target", NewTimerState(600, intPtr(10)), c},
		{"overtime is full ring", NewTimerState(601, intPtr(10)), 0},
		{"open-ended is full ring", NewTimerState(1234, nil), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ProgressOffset(tt.state, c), 1e-9)
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.seconds))
		})
	}
}
