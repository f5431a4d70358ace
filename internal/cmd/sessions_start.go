package cmd

import (
	"context"
	"fmt"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/services"
)

// SessionsStartCmd starts a focus session
type SessionsStartCmd struct {
	Duration int `help:"Target duration in minutes (0 = open-ended)" short:"t" default:"0"`
}

// Run executes the start command
func (s *SessionsStartCmd) Run(cli *CLI) error {
	if s.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}

	ctx := context.Background()
	snap, err := cli.Container.SessionService.Refresh(ctx)
	if err != nil {
		return err
	}
	if snap.Active != nil {
		return fmt.Errorf("session #%d is already running, end it first", snap.Active.ID)
	}

	var target *int
	if s.Duration > 0 {
		target = &s.Duration
	}

	session, err := cli.Container.SessionService.StartSession(ctx, services.StartSessionParams{TargetMinutes: target})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if target != nil {
		fmt.Printf("Started session #%d (target %d min)\n", session.ID, *target)
	} else {
		fmt.Printf("Started session #%d (open-ended)\n", session.ID)
	}
	return nil
}

// SessionsEndCmd stops the running session
type SessionsEndCmd struct{}

// Run executes the end command
func (s *SessionsEndCmd) Run(cli *CLI) error {
	ctx := context.Background()
	if _, err := cli.Container.SessionService.Refresh(ctx); err != nil {
		return err
	}

	session, err := cli.Container.SessionService.EndSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	fmt.Printf("Ended session #%d after %s\n", session.ID, domain.FormatSessionDuration(*session))
	return nil
}
