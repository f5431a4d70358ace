package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/services"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

const (
	statsChartHeight   = 8
	statsChartBarWidth = 5
	statsChartBarGap   = 2
)

// StatsRanges are the windows the stats screen cycles through
var StatsRanges = []string{"7d", "14d", "30d", "90d"}

// statsLoadedMsg carries a stats report
type statsLoadedMsg struct {
	err      error
	rangeStr string
	report   *domain.StatsReport
}

// RenderStatsChart renders the summary, the weekly focus/lost chart, the
// peak distraction hour and the interruption breakdown. Used by both the
// TUI and the stats command.
func RenderStatsChart(styles *theme.Styles, report *domain.StatsReport) string {
	var sb strings.Builder

	s := report.Summary
	sb.WriteString(styles.SectionHeader.Render(fmt.Sprintf("Last %s", report.Range)))
	sb.WriteString("\n")
	sb.WriteString(styles.Normal.Render(fmt.Sprintf("Worked %s · effective %s · lost %s",
		domain.FormatDuration(secondsToDuration(s.TotalTimeWorkedSeconds)),
		domain.FormatDuration(secondsToDuration(s.EffectiveTimeSeconds)),
		domain.FormatDuration(secondsToDuration(s.TotalTimeLostSeconds)))))
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render(fmt.Sprintf("%d sessions · %d interruptions · %.1f per hour",
		s.TotalSessions, s.TotalInterruptions, s.InterruptionsPerHour)))
	sb.WriteString("\n\n")

	sb.WriteString(renderWeeklyChart(styles, report.Weekly))
	sb.WriteString("\n\n")

	sb.WriteString(renderPeak(styles, report.Peak))
	sb.WriteString("\n")
	if breakdown := renderBreakdown(styles, report.Interruptions); breakdown != "" {
		sb.WriteString(breakdown)
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// renderWeeklyChart stacks focused hours and lost hours per weekday
func renderWeeklyChart(styles *theme.Styles, weekly []domain.WeekdayPattern) string {
	legend := styles.ChartLegend.Render("Weekly pattern (hours): ") +
		styles.ChartBar.Render("█") + styles.ChartLegend.Render(" focus  ") +
		styles.ChartLost.Render("█") + styles.ChartLegend.Render(" lost")

	if len(weekly) == 0 {
		return legend + "\n" + styles.Muted.Render("No sessions in this window.")
	}

	var maxVal float64
	for _, d := range weekly {
		maxVal = max(maxVal, d.SessionHours+d.LostHours)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	width := len(weekly)*(statsChartBarWidth+statsChartBarGap) + 4
	axisStyle := lipgloss.NewStyle().Foreground(styles.Palette.Muted)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Palette.Subtle)
	chart := barchart.New(width, statsChartHeight,
		barchart.WithStyles(axisStyle, labelStyle),
	)
	chart.SetBarWidth(statsChartBarWidth)
	chart.SetBarGap(statsChartBarGap)
	chart.SetMax(maxVal)

	for _, d := range weekly {
		chart.Push(barchart.BarData{
			Label: shortDay(d.Day),
			Values: []barchart.BarValue{
				{Name: "focus", Value: d.SessionHours, Style: styles.ChartBar},
				{Name: "lost", Value: d.LostHours, Style: styles.ChartLost},
			},
		})
	}
	chart.Draw()

	return legend + "\n" + chart.View()
}

func shortDay(day string) string {
	if len(day) > 3 {
		return day[:3]
	}
	return day
}

func renderPeak(styles *theme.Styles, peak domain.PeakDistraction) string {
	if peak.PeakHour == nil || peak.PeakInterruptions == 0 {
		return styles.Muted.Render("No interruptions recorded.")
	}
	return styles.Normal.Render(fmt.Sprintf("Most distracted around %02d:00 (%d of %d interruptions)",
		*peak.PeakHour, peak.PeakInterruptions, peak.TotalInterruptions))
}

// renderBreakdown lists interruption types by count, largest first
func renderBreakdown(styles *theme.Styles, b domain.InterruptionBreakdown) string {
	if b.TotalInterruptions == 0 || len(b.Counts) == 0 {
		return ""
	}

	types := make([]string, 0, len(b.Counts))
	for t := range b.Counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if b.Counts[types[i]] != b.Counts[types[j]] {
			return b.Counts[types[i]] > b.Counts[types[j]]
		}
		return types[i] < types[j]
	})

	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%s %d (%.0f%%)", t, b.Counts[t], b.Proportions[t]*100))
	}
	return styles.Muted.Render(strings.Join(parts, " · "))
}

// StatsScreen is the dialog content showing stats for a selectable window
type StatsScreen struct {
	Completed  bool
	err        error
	keys       *KeyMap
	loading    bool
	rangeIndex int
	report     *domain.StatsReport
	service    *services.StatsService
	spinner    spinner.Model
	styles     *theme.Styles
}

// NewStatsScreen creates the stats screen for the first range
func NewStatsScreen(service *services.StatsService, styles *theme.Styles, keys *KeyMap) *StatsScreen {
	return &StatsScreen{
		keys:    keys,
		service: service,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner)),
		styles:  styles,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.load())
}

func (s *StatsScreen) load() tea.Cmd {
	s.loading = true
	s.err = nil
	rangeStr := StatsRanges[s.rangeIndex]
	service := s.service
	return func() tea.Msg {
		report, err := service.Report(context.Background(), rangeStr)
		return statsLoadedMsg{err: err, rangeStr: rangeStr, report: report}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.rangeStr != StatsRanges[s.rangeIndex] {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			logging.Logger.Error("Failed to load stats", "range", msg.rangeStr, "error", msg.err)
			s.err = msg.err
			return s, nil
		}
		s.report = msg.report
		return s, nil

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			s.Completed = true
			return s, nil
		case "left", "right":
			step := 1
			if msg.String() == "left" {
				step = len(StatsRanges) - 1
			}
			s.rangeIndex = (s.rangeIndex + step) % len(StatsRanges)
			return s, tea.Batch(s.spinner.Tick, s.load())
		}
		if s.keys != nil && keyMatches(msg, s.keys.Application.Quit, s.keys.Session.Stats) {
			s.Completed = true
			return s, nil
		}
		if s.keys != nil && keyMatches(msg, s.keys.Session.Refresh) {
			return s, tea.Batch(s.spinner.Tick, s.load())
		}
	}
	return s, nil
}

func (s *StatsScreen) View() string {
	var b strings.Builder
	b.WriteString(s.renderRanges())
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(s.spinner.View() + " " + s.styles.Muted.Render("Loading stats..."))
	case s.err != nil:
		b.WriteString(s.styles.Error.Render(formatErrorForDisplay(s.err, 80)))
	case s.report != nil:
		b.WriteString(RenderStatsChart(s.styles, s.report))
	}

	b.WriteString("\n")
	b.WriteString(s.styles.Help.Render("←/→ change range • esc close"))
	return b.String()
}

func (s *StatsScreen) renderRanges() string {
	parts := make([]string, len(StatsRanges))
	for i, r := range StatsRanges {
		if i == s.rangeIndex {
			parts[i] = s.styles.HelpShortcut.Render("[" + r + "]")
		} else {
			parts[i] = s.styles.HelpLabel.Render(" " + r + " ")
		}
	}
	return strings.Join(parts, " ")
}
