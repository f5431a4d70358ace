package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/theme"
	"github.com/hyperfocus/hyperfocus/internal/ui"
)

// StatsCmd shows focus statistics for a look-back window
type StatsCmd struct {
	Format string `help:"Output format: table, chart, json or yaml" default:"table" enum:"table,chart,json,yaml"`
	Range  string `help:"Look-back window such as 7d or 30d" short:"r" default:"7d"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	report, err := cli.Container.StatsService.Report(ctx, s.Range)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if done, err := printStructured(s.Format, report); done {
		return err
	}

	switch s.Format {
	case "chart":
		styles := theme.New(cli.Container.PreferencesService.Theme(ctx))
		fmt.Println(ui.RenderStatsChart(styles, report))
	default:
		s.renderTable(report)
	}
	return nil
}

// renderTable displays the summary and the weekly pattern in table format
func (s *StatsCmd) renderTable(r *domain.StatsReport) {
	sum := r.Summary
	fmt.Printf("Focus Stats - last %s\n\n", r.Range)

	fmt.Printf("Sessions:          %d\n", sum.TotalSessions)
	fmt.Printf("Time worked:       %s\n", formatSeconds(sum.TotalTimeWorkedSeconds))
	fmt.Printf("Effective time:    %s\n", formatSeconds(sum.EffectiveTimeSeconds))
	fmt.Printf("Time lost:         %s\n", formatSeconds(sum.TotalTimeLostSeconds))
	fmt.Printf("Interruptions:     %d (%.1f per hour)\n", sum.TotalInterruptions, sum.InterruptionsPerHour)
	if r.Peak.PeakHour != nil {
		fmt.Printf("Peak distraction:  %02d:00 (%d interruptions)\n", *r.Peak.PeakHour, r.Peak.PeakInterruptions)
	}

	if len(r.Weekly) == 0 {
		fmt.Println("\nNo sessions in this window.")
		return
	}

	fmt.Println()
	fmt.Println("Day          Focus      Lost       Interrupts")
	fmt.Println(strings.Repeat(tableRule, 45))
	for _, d := range r.Weekly {
		fmt.Printf("%-12s %-10s %-10s %d\n",
			d.Day,
			formatSeconds(d.WorkSeconds),
			formatSeconds(d.TimeLostSeconds),
			d.Interruptions)
	}
	fmt.Println(strings.Repeat(tableRule, 45))

	if r.Interruptions.TotalInterruptions > 0 {
		fmt.Println()
		fmt.Println("Interruption types:")
		for _, t := range domain.SelectableInterruptionTypes {
			if n := r.Interruptions.Counts[string(t)]; n > 0 {
				fmt.Printf("  %-10s %d (%.0f%%)\n", t, n, r.Interruptions.Proportions[string(t)]*100)
			}
		}
	}
}

func formatSeconds(seconds float64) string {
	return domain.FormatDuration(time.Duration(seconds * float64(time.Second)))
}
