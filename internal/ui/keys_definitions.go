package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition is the metadata of one configurable key binding
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Msg       tea.Msg // Message dispatched when the key is pressed on the dashboard
	Name      string
	TipFormat string
}

// AllKeyDefinitions is the single source of truth for key names, defaults,
// help text and tips. Names are what settings.json "keys" overrides refer to.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts", Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "logout", Defaults: []string{"L"}, Help: "log out", Msg: LogoutMsg{}},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", Msg: QuitMsg{}},
	{Name: "theme", Defaults: []string{"t"}, Help: "toggle light/dark theme", Msg: ToggleThemeMsg{}, TipFormat: "press %s to switch between light and dark"},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "next past session"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "previous past session"},

	// Session keys
	{Name: "end_session", Defaults: []string{"e"}, Help: "stop the running session", Msg: EndSessionMsg{}},
	{Name: "interrupt", Defaults: []string{"i"}, Help: "log an interruption", Msg: LogInterruptionMsg{}, TipFormat: "press %s when something breaks your focus"},
	{Name: "new_session", Defaults: []string{"n"}, Help: "start a focus session", Msg: NewSessionMsg{}, TipFormat: "press %s to start a focus session"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "reload sessions and insights", Msg: RefreshMsg{}},
	{Name: "stats", Defaults: []string{"s"}, Help: "show focus statistics", Msg: ShowStatsMsg{}, TipFormat: "press %s to see where your focus goes"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default keys by binding name
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all binding names, sorted
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
