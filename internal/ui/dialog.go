package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hyperfocus/hyperfocus/internal/theme"
)

// Dialog wraps a form or screen and prepends the application header with
// the dialog title. Every modal in the TUI is a Dialog.
type Dialog struct {
	content tea.Model
	devMode bool
	styles  *theme.Styles
	title   string
}

// NewDialog wraps content in a dialog with the given title
func NewDialog(title string, content tea.Model, styles *theme.Styles, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		styles:  styles,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content and keeps the dialog as the model
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View renders the header followed by the content
func (d *Dialog) View() string {
	return renderHeader(d.styles, d.devMode, d.title) + "\n" + d.content.View()
}

// Content returns the wrapped content so callers can inspect its result,
// e.g. dialog.Content().(*InterruptionForm).Completed
func (d *Dialog) Content() tea.Model {
	return d.content
}

// Title returns the dialog title
func (d *Dialog) Title() string {
	return d.title
}
