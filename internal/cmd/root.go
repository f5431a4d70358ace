package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hyperfocus/hyperfocus/internal/config"
	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/services"
	"github.com/hyperfocus/hyperfocus/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	APIURL      string           `name:"api-url" help:"Base URL of the HyperFocus API" env:"HYPERFOCUS_API_URL"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Timeout     time.Duration    `help:"Timeout for a single API request" default:"15s"`
	Token       string           `help:"Bearer token to use instead of the saved login" env:"HYPERFOCUS_TOKEN"`

	Run       RunCmd       `cmd:"" help:"Start the HyperFocus TUI (default)" default:"1"`
	Login     LoginCmd     `cmd:"login" help:"Log in and save the access token"`
	Register  RegisterCmd  `cmd:"register" help:"Create an account and log in"`
	Logout    LogoutCmd    `cmd:"logout" help:"Forget the saved access token"`
	Whoami    WhoamiCmd    `cmd:"whoami" help:"Show the logged-in user"`
	Sessions  SessionsCmd  `cmd:"sessions" help:"Manage focus sessions (list, start, end, view)"`
	Interrupt InterruptCmd `cmd:"interrupt" help:"Log an interruption against the running session"`
	Insights  InsightsCmd  `cmd:"insights" help:"Show generated insights"`
	Stats     StatsCmd     `cmd:"stats" help:"Show focus statistics"`
	Status    StatusCmd    `cmd:"status" help:"One-line timer for shell prompts and status bars"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, theme, keys)"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the TUI over SSH"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play a session event sound" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// LoadedSettings returns the loaded settings.json, never nil
func (c *CLI) LoadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and no env var is set.
	settings := c.LoadedSettings()

	if c.MaxLogFiles == config.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("HYPERFOCUS_MAX_LOG_FILES"); !hasEnv && settings.MaxLogFiles != nil {
			c.MaxLogFiles = *settings.MaxLogFiles
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("HYPERFOCUS_DEBUG"); !hasEnv && settings.Debug != nil && *settings.Debug {
			c.Debug = true
		}
	}
	if c.APIURL == "" {
		c.APIURL = settings.APIURL
	}
	if c.APIURL == "" {
		c.APIURL = config.DefaultAPIURL
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Share the log file with SSH session handlers and child processes
	if c.Debug || c.DebugFile != "" {
		os.Setenv("HYPERFOCUS_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("HYPERFOCUS_DEBUG_FILE", logFilePath)
		}
	}

	// Key bindings are validated up front so a bad settings.json fails fast
	if settings.Keys != nil {
		if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
	}

	// Container is created after logging so GORM's logger has somewhere to go
	container, err := NewContainer(ContainerOptions{
		APIURL:               c.APIURL,
		DBPath:               config.GetDBPath(),
		DesktopNotifications: settings.DesktopNotifications == nil || *settings.DesktopNotifications,
		SoundEnabled:         settings.SoundEnabled == nil || *settings.SoundEnabled,
		Theme:                settings.Theme,
		Timeout:              c.Timeout,
		Token:                c.Token,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	logging.Logger.Debug("CLI initialized", "api_url", c.APIURL, "debug", c.Debug)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// NewModel builds a TUI model from the CLI's settings and container. The SSH
// server calls it once per connection.
func (c *CLI) NewModel(devMode bool, errorClearDelay, refreshInterval int) *ui.Model {
	settings := c.LoadedSettings()
	return ui.NewModel(ui.Options{
		Clock:           services.SystemClock{},
		DevMode:         devMode,
		DurationPresets: domain.PresetsFromMinutes(settings.DefaultDurations),
		ErrorClearDelay: time.Duration(errorClearDelay) * time.Second,
		Keys:            settings.Keys,
		RefreshInterval: time.Duration(refreshInterval) * time.Second,
		Theme:           c.Container.PreferencesService.Theme(context.Background()),
	}, c.Container.UIServices())
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	RefreshInterval int  `help:"Seconds between background refreshes (0 disables)" default:"30"`
}

// applySettings fills flags left at their defaults from settings.json
func (r *RunCmd) applySettings(settings *config.Settings) {
	if r.ErrorClearDelay == config.DefaultErrorClearDelay && settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *settings.ErrorClearDelay
	}
	if r.RefreshInterval == config.DefaultRefreshInterval && settings.RefreshInterval != nil {
		r.RefreshInterval = *settings.RefreshInterval
	}
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.LoadedSettings())

	logging.Logger.Info("Starting HyperFocus TUI",
		"api_url", cli.APIURL,
		"refresh_interval", r.RefreshInterval)

	p := tea.NewProgram(
		cli.NewModel(r.Dev, r.ErrorClearDelay, r.RefreshInterval),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
