package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
)

// StatusCmd prints a one-line timer for shell prompts and tmux status bars
type StatusCmd struct{}

// Run executes the status command. Failures print a placeholder instead of
// an error so status bars never show a stack of messages.
func (s *StatusCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	snap, err := cli.Container.SessionService.Refresh(ctx)
	if err != nil {
		logging.Logger.Debug("Status unavailable", "error", err)
		fmt.Printf("%s ?", domain.SymbolIdle)
		return nil
	}

	fmt.Print(formatStatus(snap, time.Now()))
	return nil
}

// formatStatus renders "● 12:34", "◐ +02:10" or "○ idle"
func formatStatus(snap domain.SessionSnapshot, now time.Time) string {
	if snap.Active == nil {
		return domain.SymbolIdle + " idle"
	}
	state := domain.NewTimerState(domain.ComputeElapsed(now, snap.Active.StartTime), snap.TargetMinutes)
	return statusSymbol(state) + " " + state.Display()
}
