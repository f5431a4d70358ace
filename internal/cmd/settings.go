package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/hyperfocus/hyperfocus/internal/adapters/editor"
	"github.com/hyperfocus/hyperfocus/internal/config"
	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Edit  SettingsEditCmd  `cmd:"edit" help:"Open settings.json in your editor"`
	Keys  SettingsKeysCmd  `cmd:"keys" help:"List or change keyboard shortcuts"`
	Meta  SettingsMetaCmd  `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Theme SettingsThemeCmd `cmd:"theme" help:"Show, set or toggle the light/dark theme"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure HyperFocus.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// SettingsThemeCmd reads or changes the saved theme
type SettingsThemeCmd struct {
	Theme  string `arg:"" optional:"" help:"Theme to use: light or dark"`
	Toggle bool   `help:"Switch to the other theme"`
}

// Run executes the theme command
func (s *SettingsThemeCmd) Run(cli *CLI) error {
	ctx := context.Background()
	prefs := cli.Container.PreferencesService

	switch {
	case s.Toggle:
		t, err := prefs.ToggleTheme(ctx)
		if err != nil {
			return fmt.Errorf("failed to toggle theme: %w", err)
		}
		fmt.Printf("Theme: %s\n", t)
	case s.Theme != "":
		t, err := domain.ParseTheme(s.Theme)
		if err != nil {
			return err
		}
		if err := prefs.SetTheme(ctx, t); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
		fmt.Printf("Theme: %s\n", t)
	default:
		fmt.Printf("Theme: %s\n", prefs.Theme(ctx))
	}
	return nil
}

// SettingsEditCmd opens settings.json in an editor, creating it first if needed
type SettingsEditCmd struct {
	Editor string `help:"Editor command to use instead of $HYPERFOCUS_EDITOR, $VISUAL or $EDITOR"`
}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	path := config.GetSettingsPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.SaveSettings(&config.Settings{}); err != nil {
			return err
		}
	}

	if err := editor.NewOpener().Open(context.Background(), path, s.Editor); err != nil {
		return err
	}

	// Report mistakes now rather than on the next launch
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if settings.Keys != nil {
		if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings: %w", err)
		}
	}

	fmt.Printf("Saved %s\n", path)
	return nil
}
