package cmd

import (
	"context"
	"fmt"

	"github.com/hyperfocus/hyperfocus/internal/theme"
	"github.com/hyperfocus/hyperfocus/internal/ui"
)

// InsightsCmd shows generated insights
type InsightsCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Width  int    `help:"Wrap width of the cards" default:"80"`
}

// Run executes the insights command
func (i *InsightsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	insights, err := cli.Container.InsightsService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load insights: %w", err)
	}

	if done, err := printStructured(i.Format, insights); done {
		return err
	}

	if len(insights) == 0 {
		fmt.Println("No insights yet. Log a few sessions first.")
		return nil
	}

	styles := theme.New(cli.Container.PreferencesService.Theme(ctx))
	fmt.Println(ui.RenderInsights(styles, insights, i.Width))
	return nil
}
