package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/hyperfocus/hyperfocus/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// ModelFactory builds the TUI model served to one SSH connection
type ModelFactory func() tea.Model

// Options configure the SSH server
type Options struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyDir         string
	Port               string
}

// Server serves the HyperFocus TUI over SSH
type Server struct {
	address    string
	newModel   ModelFactory
	wishServer *ssh.Server
}

// NewServer creates the SSH server. Only keys listed in the authorized keys
// file may connect.
func NewServer(opts Options, newModel ModelFactory) (*Server, error) {
	if err := os.MkdirAll(opts.HostKeyDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address:  net.JoinHostPort(opts.Host, opts.Port),
		newModel: newModel,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(filepath.Join(opts.HostKeyDir, "id_ed25519")),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			return authorize(ctx.User(), key, opts.AuthorizedKeysPath)
		}),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	logging.Logger.Info("Starting SSH server", "address", s.address)
	fmt.Printf("SSH server listening on %s\n", s.address)

	serveErr := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			serveErr <- err
		}
	}()

	select {
	case <-done:
	case err := <-serveErr:
		return fmt.Errorf("SSH server failed: %w", err)
	}

	logging.Logger.Info("Shutting down SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
