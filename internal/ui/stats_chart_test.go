package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/hyperfocus/hyperfocus/internal/config"
	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

func TestRenderPeak(t *testing.T) {
	styles := theme.New(domain.ThemeLight)

	assert.Contains(t, renderPeak(styles, domain.PeakDistraction{}), "No interruptions recorded.")

	peak := renderPeak(styles, domain.PeakDistraction{PeakHour: intPtr(9), PeakInterruptions: 4, TotalInterruptions: 10})
	assert.Contains(t, peak, "Most distracted around 09:00 (4 of 10 interruptions)")
}

func TestRenderBreakdown_LargestFirst(t *testing.T) {
	styles := theme.New(domain.ThemeLight)

	assert.Equal(t, "", renderBreakdown(styles, domain.InterruptionBreakdown{}))

	out := renderBreakdown(styles, domain.InterruptionBreakdown{
		Counts:             map[string]int{"digital": 1, "external": 3},
		Proportions:        map[string]float64{"digital": 0.25, "external": 0.75},
		TotalInterruptions: 4,
	})
	assert.Contains(t, out, "external 3 (75%) · digital 1 (25%)")
}

func TestRenderStatsChart(t *testing.T) {
	styles := theme.New(domain.ThemeDark)

	empty := RenderStatsChart(styles, &domain.StatsReport{Range: "7d"})
	assert.Contains(t, empty, "Last 7d")
	assert.Contains(t, empty, "No sessions in this window.")

	report := &domain.StatsReport{
		Range: "30d",
		Summary: domain.StatsSummary{
			TotalSessions:          3,
			TotalInterruptions:     2,
			TotalTimeWorkedSeconds: 5400,
			EffectiveTimeSeconds:   4800,
			TotalTimeLostSeconds:   600,
		},
		Weekly: []domain.WeekdayPattern{
			{Day: "Monday", SessionHours: 1.5, LostHours: 0.2},
			{Day: "Tuesday", SessionHours: 0.5},
		},
	}
	out := RenderStatsChart(styles, report)
	assert.Contains(t, out, "Worked 1h 30m · effective 1h 20m · lost 10m")
	assert.Contains(t, out, "3 sessions · 2 interruptions")
	assert.Contains(t, out, "Weekly pattern (hours)")
	assert.NotContains(t, out, "No sessions in this window.")
}

func TestStatsScreen_IgnoresStaleRange(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{})
	screen := NewStatsScreen(nil, theme.New(domain.ThemeDark), &keys)
	screen.loading = true
	screen.rangeIndex = 1

	screen.Update(statsLoadedMsg{rangeStr: StatsRanges[0], report: &domain.StatsReport{Range: StatsRanges[0]}})
	assert.True(t, screen.loading)
	assert.Nil(t, screen.report)

	screen.Update(statsLoadedMsg{rangeStr: StatsRanges[1], err: errors.New("boom")})
	assert.False(t, screen.loading)
	assert.Contains(t, screen.View(), "Error: boom")
}

func TestStatsScreen_Closes(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{})
	screen := NewStatsScreen(nil, theme.New(domain.ThemeDark), &keys)

	screen.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, screen.Completed)
}
