package server

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type countingModel struct {
	updates int
}

func (m countingModel) Init() tea.Cmd { return nil }

func (m countingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.updates++
	return m, nil
}

func (m countingModel) View() string { return "" }

func TestSessionModel_ForwardsUpdates(t *testing.T) {
	s := &sessionModel{Model: countingModel{}, connectionID: "c1"}

	updated, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Same(t, s, updated)

	s.Update(tea.QuitMsg{})
	assert.Equal(t, 2, s.Model.(countingModel).updates)
}

func TestNewServer_CreatesHostKeyDir(t *testing.T) {
	dir := t.TempDir() + "/ssh"

	srv, err := NewServer(Options{
		AuthorizedKeysPath: dir + "/authorized_keys",
		Host:               "127.0.0.1",
		HostKeyDir:         dir,
		Port:               "0",
	}, func() tea.Model { return countingModel{} })

	assert.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, "127.0.0.1:0", srv.Address())
}
