package services

import (
	"time"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// StartSessionParams contains parameters for starting a focus session
type StartSessionParams struct {
	// TargetMinutes is nil for an open-ended session
	TargetMinutes *int
}

// LogInterruptionParams contains the interruption dialog input
type LogInterruptionParams struct {
	Description     string
	DurationMinutes int
	Type            domain.InterruptionType
}

// Dashboard is everything the main screen shows at once
type Dashboard struct {
	Insights []domain.Insight
	Snapshot domain.SessionSnapshot
}
