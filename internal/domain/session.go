package domain

import (
	"fmt"
	"time"
)

// Status symbols (Unicode)
const (
	SymbolActive   = "●" // Session running within target
	SymbolIdle     = "○" // No session running
	SymbolOvertime = "◐" // Session running past its target
)

// Session is a focus session as reported by the server
type Session struct {
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	EndTime   *time.Time `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	ID        int        `json:"id" yaml:"id"`
	StartTime time.Time  `json:"start_time" yaml:"start_time"`
	UserID    int        `json:"user_id" yaml:"user_id"`
}

// IsActive reports whether the session has not been ended yet
func (s Session) IsActive() bool {
	return s.EndTime == nil
}

// Duration returns the wall time covered by the session. Running sessions
// are measured up to now.
func (s Session) Duration(now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	if end.Before(s.StartTime) {
		return 0
	}
	return end.Sub(s.StartTime)
}

// SessionSnapshot is the client-side partition of the session list
type SessionSnapshot struct {
	Active        *Session  `json:"active" yaml:"active"`
	History       []Session `json:"history" yaml:"history"`
	TargetMinutes *int      `json:"target_minutes,omitempty" yaml:"target_minutes,omitempty"`
}

// HasActive reports whether a session is currently running
func (s SessionSnapshot) HasActive() bool {
	return s.Active != nil
}

// PartitionSessions splits a server listing into the running session (the
// first entry without an end time) and the ended sessions, preserving the
// server's ordering.
func PartitionSessions(sessions []Session) (*Session, []Session) {
	var active *Session
	history := make([]Session, 0, len(sessions))

	for i := range sessions {
		if sessions[i].IsActive() {
			if active == nil {
				s := sessions[i]
				active = &s
			}
			continue
		}
		history = append(history, sessions[i])
	}

	return active, history
}

// FormatDuration renders a span as "1h 5m" or "25m"
func FormatDuration(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatSessionDuration is FormatDuration for a listing row; running
// sessions have no duration yet.
func FormatSessionDuration(s Session) string {
	if s.EndTime == nil {
		return "Running..."
	}
	return FormatDuration(s.Duration(time.Time{}))
}
