package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hyperfocus/hyperfocus/internal/config"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	AuthorizedKeys  string `help:"authorized_keys file checked on login" default:"~/.ssh/authorized_keys"`
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Host            string `help:"Host to bind to" default:"localhost"`
	Port            string `help:"Port to listen on" default:"23234"`
	RefreshInterval int    `help:"Seconds between background refreshes (0 disables)" default:"30"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.LoadedSettings()
	run := RunCmd{Dev: s.Dev, ErrorClearDelay: s.ErrorClearDelay, RefreshInterval: s.RefreshInterval}
	run.applySettings(settings)

	logging.Logger.Info("Starting HyperFocus SSH server",
		"host", s.Host,
		"port", s.Port,
		"api_url", cli.APIURL)

	// Every connection shares the container, so all SSH users act as the saved login
	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		Host:               s.Host,
		HostKeyDir:         config.GetSSHDir(),
		Port:               s.Port,
	}, func() tea.Model {
		return cli.NewModel(run.Dev, run.ErrorClearDelay, run.RefreshInterval)
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
