package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/hyperfocus/hyperfocus/internal/config"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., interrupt, help, quit)"`
	Value string `arg:"" help:"Key binding (e.g., a, ctrl+s, or comma-separated for multiple: up,k)"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	customKeys := cli.LoadedSettings().Keys

	if s.Format != "table" {
		_, err := printStructured(s.Format, keyBindingsReport(names, defaults, customKeys))
		return err
	}

	return s.outputTable(names, defaults, customKeys)
}

// keyBindingEntry is one binding in the machine-readable listing
type keyBindingEntry struct {
	Custom  []string `json:"custom,omitempty" yaml:"custom,omitempty"`
	Default []string `json:"default" yaml:"default"`
	Help    string   `json:"help" yaml:"help"`
}

func keyBindingsReport(names []string, defaults map[string][]string, customKeys config.KeyBindingsConfig) map[string]keyBindingEntry {
	result := make(map[string]keyBindingEntry, len(names))
	for _, name := range names {
		entry := keyBindingEntry{Default: defaults[name]}
		if def := ui.GetKeyDefinition(name); def != nil {
			entry.Help = def.Help
		}
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			entry.Custom = custom
		}
		result[name] = entry
	}
	return result
}

func (s *SettingsKeysListCmd) outputTable(names []string, defaults map[string][]string, customKeys config.KeyBindingsConfig) error {
	settingsFile := config.GetSettingsPath()
	fmt.Printf("Key Bindings (settings file: %s)\n\n", settingsFile)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom")
	fmt.Fprintln(w, "────\t───────\t──────")

	for _, name := range names {
		defaultKeys := strings.Join(defaults[name], ", ")
		customStr := "-"

		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			customStr = strings.Join(custom, ", ")
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", name, defaultKeys, customStr)
	}

	w.Flush()

	fmt.Println()
	fmt.Println("Use 'hyperfocus settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !slices.Contains(ui.GetValidKeyNames(), s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}

	settings.Keys[s.Key] = values

	// Reject a key already bound to another action
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
