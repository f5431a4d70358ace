package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/hyperfocus/hyperfocus/internal/logging"
)

// sessionModel wraps the TUI to log the lifetime of one SSH connection
type sessionModel struct {
	tea.Model
	connectionID string
	startTime    time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"connection_id", s.connectionID,
			"duration", time.Since(s.startTime).String())
	}

	updated, cmd := s.Model.Update(msg)
	s.Model = updated
	return s, cmd
}

// teaHandler creates a Bubble Tea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	connectionID := uuid.NewString()

	logging.Logger.Info("New SSH session",
		"connection_id", connectionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := &sessionModel{
		Model:        s.newModel(),
		connectionID: connectionID,
		startTime:    time.Now(),
	}
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}
