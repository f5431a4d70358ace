package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// InterruptionType categorises what broke the user's focus
type InterruptionType string

const (
	InterruptionDigital  InterruptionType = "digital"
	InterruptionExternal InterruptionType = "external"
	InterruptionInternal InterruptionType = "internal"
	InterruptionOther    InterruptionType = "other"
	// InterruptionUnknown is accepted by the server for legacy rows. The
	// client reads it but never offers it.
	InterruptionUnknown InterruptionType = "unknown"
)

// DefaultInterruptionType is preselected in the interruption dialog
const DefaultInterruptionType = InterruptionExternal

// MaxDescriptionLength mirrors the server-side column limit
const MaxDescriptionLength = 500

// SelectableInterruptionTypes lists the types a user may log, in menu order
var SelectableInterruptionTypes = []InterruptionType{
	InterruptionExternal,
	InterruptionDigital,
	InterruptionInternal,
	InterruptionOther,
}

// Label returns a human description with examples
func (t InterruptionType) Label() string {
	switch t {
	case InterruptionExternal:
		return "External (Phone, Colleague)"
	case InterruptionDigital:
		return "Digital (Email, Slack)"
	case InterruptionInternal:
		return "Internal (Daydreaming)"
	case InterruptionOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// IsSelectable reports whether the type may be submitted by the client
func (t InterruptionType) IsSelectable() bool {
	for _, s := range SelectableInterruptionTypes {
		if s == t {
			return true
		}
	}
	return false
}

// ParseInterruptionType validates a user-supplied type name
func ParseInterruptionType(s string) (InterruptionType, error) {
	t := InterruptionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsSelectable() {
		return "", fmt.Errorf("%w: unknown interruption type %q", ErrValidation, s)
	}
	return t, nil
}

// Interruption is a logged distraction within a session
type Interruption struct {
	CreatedAt   time.Time        `json:"created_at" yaml:"created_at"`
	Description string           `json:"description" yaml:"description"`
	Duration    int              `json:"duration" yaml:"duration"`
	EndTime     time.Time        `json:"end_time" yaml:"end_time"`
	ID          int              `json:"id" yaml:"id"`
	SessionID   int              `json:"session_id" yaml:"session_id"`
	StartTime   time.Time        `json:"start_time" yaml:"start_time"`
	Type        InterruptionType `json:"type" yaml:"type"`
	UserID      int              `json:"user_id" yaml:"user_id"`
}

// NewInterruption is the payload for logging an interruption
type NewInterruption struct {
	Description string
	EndTime     time.Time
	SessionID   int
	StartTime   time.Time
	Type        InterruptionType
}

// BuildInterruption validates user input and derives the time window. The
// interruption starts now and ends durationMinutes later.
func BuildInterruption(sessionID int, t InterruptionType, description string, durationMinutes int, now time.Time) (NewInterruption, error) {
	description = strings.TrimSpace(description)

	if !t.IsSelectable() {
		return NewInterruption{}, fmt.Errorf("%w: unknown interruption type %q", ErrValidation, t)
	}
	if description == "" {
		return NewInterruption{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return NewInterruption{}, fmt.Errorf("%w: description must be at most %d characters", ErrValidation, MaxDescriptionLength)
	}
	if durationMinutes < 1 {
		return NewInterruption{}, fmt.Errorf("%w: duration must be at least 1 minute", ErrValidation)
	}

	return NewInterruption{
		Description: description,
		EndTime:     now.Add(time.Duration(durationMinutes) * time.Minute),
		SessionID:   sessionID,
		StartTime:   now,
		Type:        t,
	}, nil
}
