package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/services"
)

// InterruptCmd logs an interruption against the running session
type InterruptCmd struct {
	Description string `arg:"" help:"What interrupted you"`
	Duration    int    `help:"Minutes the interruption took" short:"m" default:"1"`
	Type        string `help:"Interruption type: external, digital, internal or other" short:"t" default:"external"`
}

// Run executes the interrupt command
func (i *InterruptCmd) Run(cli *CLI) error {
	typ, err := domain.ParseInterruptionType(i.Type)
	if err != nil {
		return err
	}

	ctx := context.Background()
	snap, err := cli.Container.SessionService.Refresh(ctx)
	if err != nil {
		return err
	}
	if snap.Active == nil {
		return fmt.Errorf("%w: start a session before logging interruptions", domain.ErrNoActiveSession)
	}

	in, err := cli.Container.InterruptionService.LogInterruption(ctx, snap.Active.ID, services.LogInterruptionParams{
		Description:     strings.TrimSpace(i.Description),
		DurationMinutes: i.Duration,
		Type:            typ,
	})
	if err != nil {
		return fmt.Errorf("error logging interruption: %w", err)
	}

	fmt.Printf("Logged %s interruption #%d on session #%d\n", in.Type.Label(), in.ID, snap.Active.ID)
	return nil
}
