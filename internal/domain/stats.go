package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultStatsRange is the look-back window used when none is given
const DefaultStatsRange = "7d"

// ParseStatsRange validates a "<days>d" window and returns it normalised
func ParseStatsRange(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultStatsRange, nil
	}
	days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
	if err != nil || days < 1 {
		return "", fmt.Errorf("%w: range must look like 7d", ErrValidation)
	}
	return fmt.Sprintf("%dd", days), nil
}

// StatsSummary aggregates work and interruptions over a window
type StatsSummary struct {
	AverageInterruptionDurationSeconds float64 `json:"average_interruption_duration_seconds" yaml:"average_interruption_duration_seconds"`
	EffectiveTimeSeconds               float64 `json:"effective_time_seconds" yaml:"effective_time_seconds"`
	InterruptionsPerHour               float64 `json:"interruptions_per_hour" yaml:"interruptions_per_hour"`
	RangeDays                          int     `json:"range_days" yaml:"range_days"`
	TotalInterruptions                 int     `json:"total_interruptions" yaml:"total_interruptions"`
	TotalSessions                      int     `json:"total_sessions" yaml:"total_sessions"`
	TotalTimeLostSeconds               float64 `json:"total_time_lost_seconds" yaml:"total_time_lost_seconds"`
	TotalTimeWorkedSeconds             float64 `json:"total_time_worked_seconds" yaml:"total_time_worked_seconds"`
	UserID                             int     `json:"user_id" yaml:"user_id"`
}

// InterruptionBreakdown counts interruptions per type
type InterruptionBreakdown struct {
	Counts             map[string]int     `json:"counts" yaml:"counts"`
	Proportions        map[string]float64 `json:"proportions" yaml:"proportions"`
	TotalInterruptions int                `json:"total_interruptions" yaml:"total_interruptions"`
}

// HourlyProductivity is one hour-of-day bucket
type HourlyProductivity struct {
	Hour                 int     `json:"hour" yaml:"hour"`
	Interruptions        int     `json:"interruptions" yaml:"interruptions"`
	InterruptionsPerHour float64 `json:"interruptions_per_hour" yaml:"interruptions_per_hour"`
	ProductivityScore    float64 `json:"productivity_score" yaml:"productivity_score"`
	WorkSeconds          float64 `json:"work_seconds" yaml:"work_seconds"`
}

// PeakDistraction identifies the hour with the most interruptions
type PeakDistraction struct {
	PeakHour           *int `json:"peak_hour" yaml:"peak_hour"`
	PeakInterruptions  int  `json:"peak_interruptions" yaml:"peak_interruptions"`
	TotalInterruptions int  `json:"total_interruptions" yaml:"total_interruptions"`
}

// WeekdayPattern is one weekday bucket. LostHours and SessionHours are the
// chart-friendly hour figures the server rounds to one decimal.
type WeekdayPattern struct {
	Day                  string  `json:"day" yaml:"day"`
	EffectiveTimeSeconds float64 `json:"effective_time_seconds" yaml:"effective_time_seconds"`
	Interruptions        int     `json:"interruptions" yaml:"interruptions"`
	LostHours            float64 `json:"lost" yaml:"lost"`
	SessionHours         float64 `json:"sessions" yaml:"sessions"`
	TimeLostSeconds      float64 `json:"time_lost_seconds" yaml:"time_lost_seconds"`
	WeekdayIndex         int     `json:"weekday_index" yaml:"weekday_index"`
	WorkSeconds          float64 `json:"work_seconds" yaml:"work_seconds"`
}

// StatsReport bundles every stats view for one window
type StatsReport struct {
	Hours         []HourlyProductivity  `json:"hours" yaml:"hours"`
	Interruptions InterruptionBreakdown `json:"interruption_types" yaml:"interruption_types"`
	Peak          PeakDistraction       `json:"peak_distraction" yaml:"peak_distraction"`
	Range         string                `json:"range" yaml:"range"`
	Summary       StatsSummary          `json:"summary" yaml:"summary"`
	Weekly        []WeekdayPattern      `json:"weekly_pattern" yaml:"weekly_pattern"`
}
