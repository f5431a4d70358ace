package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	styles      *theme.Styles
	viewport    viewport.Model
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, styles *theme.Styles) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys, styles),
		keys:     keys,
		styles:   styles,
		viewport: viewport.New(0, 0),
	}
}

// buildHelpContent renders every binding grouped by context
func buildHelpContent(keys *KeyMap, styles *theme.Styles) string {
	var b strings.Builder

	group := func(title string, first bool) {
		if !first {
			b.WriteString("\n")
		}
		b.WriteString(styles.HelpGroup.Render(title) + "\n")
	}
	binding := func(k key.Binding) {
		h := k.Help()
		b.WriteString(renderShortcut(styles, h.Key, h.Desc))
	}

	group("Focus Session", true)
	binding(keys.Session.New.Binding)
	binding(keys.Session.Interrupt.Binding)
	binding(keys.Session.End.Binding)
	binding(keys.Session.Refresh.Binding)
	binding(keys.Session.Stats.Binding)

	group("Past Sessions", false)
	binding(keys.Navigation.Up.Binding)
	binding(keys.Navigation.Down.Binding)

	group("Application", false)
	binding(keys.Application.Theme.Binding)
	binding(keys.Application.Logout.Binding)
	binding(keys.Application.Help.Binding)
	binding(keys.Application.Quit.Binding)
	binding(keys.Application.ForceQuit.Binding)

	group("Timer (read-only)", false)
	b.WriteString(renderShortcut(styles, domain.SymbolActive, "session running within its target"))
	b.WriteString(renderShortcut(styles, domain.SymbolOvertime, "session past its target (overtime)"))
	b.WriteString(renderShortcut(styles, domain.SymbolIdle, "no session running"))
	b.WriteString(renderShortcut(styles, "+05:00", "time spent past the target"))

	return b.String()
}

func renderShortcut(styles *theme.Styles, key, description string) string {
	return styles.HelpKey.Render(key) + styles.HelpDesc.Render(description) + "\n"
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || keyMatches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := h.styles.Help.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
