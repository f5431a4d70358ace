package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ended(id int, start time.Time, d time.Duration) Session {
	end := start.Add(d)
	return Session{ID: id, StartTime: start, EndTime: &end}
}

func TestPartitionSessions(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		sessions        []Session
		expectedActive  *int
		expectedHistory []int
	}{
		{
			name:            "empty listing",
			sessions:        nil,
			expectedHistory: []int{},
		},
		{
			name: "only ended sessions",
			sessions: []Session{
				ended(3, base.Add(2*time.Hour), time.Hour),
				ended(2, base, time.Hour),
			},
			expectedHistory: []int{3, 2},
		},
		{
			name: "active first",
			sessions: []Session{
				{ID: 4, StartTime: base.Add(3 * time.Hour)},
				ended(3, base.Add(2*time.Hour), time.Hour),
			},
			expectedActive:  intPtr(4),
			expectedHistory: []int{3},
		},
		{
			name: "first unended wins when the server reports two",
			sessions: []Session{
				ended(9, base.Add(4*time.Hour), time.Hour),
				{ID: 8, StartTime: base.Add(3 * time.Hour)},
				{ID: 7, StartTime: base.Add(2 * time.Hour)},
				ended(6, base, time.Hour),
			},
			expectedActive:  intPtr(8),
			expectedHistory: []int{9, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, history := PartitionSessions(tt.sessions)

			if tt.expectedActive == nil {
				assert.Nil(t, active)
			} else {
				require.NotNil(t, active)
				assert.Equal(t, *tt.expectedActive, active.ID)
			}

			ids := make([]int, 0, len(history))
			for _, s := range history {
				assert.NotNil(t, s.EndTime)
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expectedHistory, ids)
		})
	}
}

func TestPartitionSessions_DoesNotAliasInput(t *testing.T) {
	sessions := []Session{{ID: 1, StartTime: time.Now()}}

	active, _ := PartitionSessions(sessions)
	active.ID = 99

	assert.Equal(t, 1, sessions[0].ID)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0m"},
		{59 * time.Second, "0m"},
		{25 * time.Minute, "25m"},
		{time.Hour, "1h 0m"},
		{90*time.Minute + 30*time.Second, "1h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.d))
		})
	}
}

func TestFormatSessionDuration(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "Running...", FormatSessionDuration(Session{StartTime: base}))
	assert.Equal(t, "1h 5m", FormatSessionDuration(ended(1, base, 65*time.Minute)))
}
