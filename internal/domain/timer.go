package domain

import (
	"fmt"
	"math"
	"time"
)

// RingRadius is the radius of the progress ring in abstract units
const RingRadius = 120

// RingCircumference is the stroke length of a full progress ring
var RingCircumference = 2 * math.Pi * RingRadius

// TimerMode describes what the focus clock is currently showing
type TimerMode string

const (
	TimerCountdown TimerMode = "countdown"
	TimerOpenEnded TimerMode = "open_ended"
	TimerOvertime  TimerMode = "overtime"
)

// Label returns the caption shown under the clock
func (m TimerMode) Label() string {
	switch m {
	case TimerOvertime:
		return "Overtime"
	case TimerCountdown:
		return "Focusing..."
	default:
		return "Deep Work"
	}
}

// ComputeElapsed returns whole seconds since start, floored. Clock skew that
// puts start in the future yields zero.
func ComputeElapsed(now, start time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// TimerState is the derived view of a running session at one instant
type TimerState struct {
	Elapsed       int
	TargetMinutes *int
}

// NewTimerState builds the derived state. A non-positive target is treated as
// open-ended.
func NewTimerState(elapsed int, targetMinutes *int) TimerState {
	if targetMinutes != nil && *targetMinutes <= 0 {
		targetMinutes = nil
	}
	return TimerState{Elapsed: elapsed, TargetMinutes: targetMinutes}
}

// HasTarget reports whether a target duration is attached
func (t TimerState) HasTarget() bool {
	return t.TargetMinutes != nil
}

// TargetSeconds returns the target in seconds, or zero when open-ended
func (t TimerState) TargetSeconds() int {
	if t.TargetMinutes == nil {
		return 0
	}
	return *t.TargetMinutes * 60
}

// Remaining returns the countdown value. Without a target it is the elapsed
// time, which is what the clock shows in open-ended mode.
func (t TimerState) Remaining() int {
	if !t.HasTarget() {
		return t.Elapsed
	}
	r := t.TargetSeconds() - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// IsOvertime is true strictly after the target has been passed
func (t TimerState) IsOvertime() bool {
	return t.HasTarget() && t.Elapsed > t.TargetSeconds()
}

// OvertimeSeconds is how far past the target the session has run
func (t TimerState) OvertimeSeconds() int {
	if !t.IsOvertime() {
		return 0
	}
	return t.Elapsed - t.TargetSeconds()
}

// Mode classifies the state for rendering
func (t TimerState) Mode() TimerMode {
	switch {
	case t.IsOvertime():
		return TimerOvertime
	case t.HasTarget():
		return TimerCountdown
	default:
		return TimerOpenEnded
	}
}

// Display returns the clock text: the countdown, the elapsed time when
// open-ended, or the overtime prefixed with "+".
func (t TimerState) Display() string {
	if t.IsOvertime() {
		return "+" + FormatClock(t.OvertimeSeconds())
	}
	return FormatClock(t.Remaining())
}

// Progress is the fraction of the target still remaining, in [0, 1].
// Open-ended sessions keep a full ring.
func (t TimerState) Progress() float64 {
	if !t.HasTarget() {
		return 1
	}
	if t.TargetSeconds() <= 0 {
		return 0
	}
	p := float64(t.TargetSeconds()-t.Elapsed) / float64(t.TargetSeconds())
	return math.Max(0, math.Min(1, p))
}

// ProgressOffset is the stroke offset of the ring for the given state. The
// ring is drawn full (offset zero) once the session is in overtime.
func ProgressOffset(t TimerState, circumference float64) float64 {
	if t.IsOvertime() {
		return 0
	}
	return circumference - t.Progress()*circumference
}

// FormatClock renders seconds as h:mm:ss when at least an hour, else mm:ss
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
