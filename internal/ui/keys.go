package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hyperfocus/hyperfocus/internal/config"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

// KeyWithTip is a binding plus the tip text advertising it
type KeyWithTip struct {
	Binding key.Binding
	Name    string
	Tip     *Tip
}

// Tip is a format string whose %s placeholders are highlighted keys
type Tip struct {
	Format string
	Keys   []string
}

// Text renders the tip without styling
func (t Tip) Text() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// ApplicationKeys are available on every screen of the dashboard
type ApplicationKeys struct {
	ForceQuit KeyWithTip
	Help      KeyWithTip
	Logout    KeyWithTip
	Quit      KeyWithTip
	Theme     KeyWithTip
}

// NavigationKeys move through the history list
type NavigationKeys struct {
	Down KeyWithTip
	Up   KeyWithTip
}

// SessionKeys drive the focus session lifecycle
type SessionKeys struct {
	End       KeyWithTip
	Interrupt KeyWithTip
	New       KeyWithTip
	Refresh   KeyWithTip
	Stats     KeyWithTip
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Session     SessionKeys
}

// NewKeyMap builds the key map, applying overrides from settings.json.
// Pass nil to use the defaults.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	b := func(name string) KeyWithTip {
		return buildBinding(name, defaults, keysConfig)
	}

	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: b("force_quit"),
			Help:      b("help"),
			Logout:    b("logout"),
			Quit:      b("quit"),
			Theme:     b("theme"),
		},
		Navigation: NavigationKeys{
			Down: b("down"),
			Up:   b("up"),
		},
		Session: SessionKeys{
			End:       b("end_session"),
			Interrupt: b("interrupt"),
			New:       b("new_session"),
			Refresh:   b("refresh"),
			Stats:     b("stats"),
		},
	}
}

// actionKeys lists the bindings that dispatch a message on the dashboard
func (k KeyMap) actionKeys() []KeyWithTip {
	return []KeyWithTip{
		k.Application.Help,
		k.Application.Logout,
		k.Application.Quit,
		k.Application.Theme,
		k.Session.End,
		k.Session.Interrupt,
		k.Session.New,
		k.Session.Refresh,
		k.Session.Stats,
	}
}

// Dispatch maps a key press to its action message, or nil
func (k KeyMap) Dispatch(msg tea.KeyMsg) tea.Msg {
	for _, kt := range k.actionKeys() {
		if key.Matches(msg, kt.Binding) {
			if def := GetKeyDefinition(kt.Name); def != nil {
				return def.Msg
			}
		}
	}
	return nil
}

// keyMatches reports whether msg matches any of the bindings
func keyMatches(msg tea.KeyMsg, keys ...KeyWithTip) bool {
	for _, k := range keys {
		if key.Matches(msg, k.Binding) {
			return true
		}
	}
	return false
}

// Tips returns the tips of all bindings that have one
func (k KeyMap) Tips() []Tip {
	var tips []Tip
	for _, kt := range k.actionKeys() {
		if kt.Tip != nil {
			tips = append(tips, *kt.Tip)
		}
	}
	return tips
}

// ShortHelp is the curated list shown under the dashboard
func (k KeyMap) ShortHelp(active bool) []key.Binding {
	if active {
		return []key.Binding{
			k.Session.Interrupt.Binding,
			k.Session.End.Binding,
			k.Session.Stats.Binding,
			k.Application.Help.Binding,
			k.Application.Quit.Binding,
		}
	}
	return []key.Binding{
		k.Session.New.Binding,
		k.Session.Stats.Binding,
		k.Application.Theme.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// buildBinding creates a binding from its definition, preferring custom keys
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), def.Help),
		),
		Name: name,
	}
	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = &Tip{Format: def.TipFormat, Keys: []string{keys[0]}}
	}
	return result
}

// RenderTip formats a tip with highlighted keys
func RenderTip(styles *theme.Styles, tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	result := styles.TipText.Render("ℹ  tip: ")
	for i, part := range parts {
		result += styles.TipText.Render(part)
		if i < len(tip.Keys) {
			result += styles.TipKey.Render(tip.Keys[i])
		}
	}
	return result
}

// renderShortHelp renders bindings as "key label • key label"
func renderShortHelp(styles *theme.Styles, bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpShortcut.Render(h.Key)+" "+styles.HelpLabel.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpLabel.Render(" • "))
}
