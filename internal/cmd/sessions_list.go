package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// SessionsListCmd lists the active session and the history
type SessionsListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Limit  int    `help:"Maximum number of past sessions to show (0 = all)" default:"0"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	snap, err := cli.Container.SessionService.Refresh(context.Background())
	if err != nil {
		return err
	}

	if s.Limit > 0 && len(snap.History) > s.Limit {
		snap.History = snap.History[:s.Limit]
	}

	if done, err := printStructured(s.Format, snap); done {
		return err
	}

	s.printTable(snap, time.Now())
	return nil
}

func (s *SessionsListCmd) printTable(snap domain.SessionSnapshot, now time.Time) {
	if snap.Active != nil {
		state := domain.NewTimerState(domain.ComputeElapsed(now, snap.Active.StartTime), snap.TargetMinutes)
		target := "open-ended"
		if state.HasTarget() {
			target = fmt.Sprintf("target %d min", *state.TargetMinutes)
		}
		fmt.Printf("%s Session #%d running since %s (%s, %s)\n\n",
			statusSymbol(state),
			snap.Active.ID,
			snap.Active.StartTime.Local().Format("15:04"),
			target,
			state.Display())
	} else {
		fmt.Printf("%s No active session\n\n", domain.SymbolIdle)
	}

	if len(snap.History) == 0 {
		fmt.Println("No past sessions found.")
		return
	}

	fmt.Println("ID     Date          Time          Duration")
	fmt.Println(strings.Repeat(tableRule, 45))
	for _, sess := range snap.History {
		start := sess.StartTime.Local()
		span := start.Format("15:04")
		if sess.EndTime != nil {
			span += "–" + sess.EndTime.Local().Format("15:04")
		}
		fmt.Printf("%-6d %-13s %-13s %s\n",
			sess.ID,
			start.Format("Mon Jan _2"),
			span,
			domain.FormatSessionDuration(sess))
	}
}

// statusSymbol picks the symbol for a running session
func statusSymbol(state domain.TimerState) string {
	if state.IsOvertime() {
		return domain.SymbolOvertime
	}
	return domain.SymbolActive
}
