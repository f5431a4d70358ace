package ui

import (
	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/services"
)

// Action messages. Key handlers and dialogs emit these and Model reacts in
// updateDashboard.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowStatsMsg requests showing the stats screen
type ShowStatsMsg struct{}

// NewSessionMsg requests the start-session dialog
type NewSessionMsg struct{}

// EndSessionMsg requests ending the running session
type EndSessionMsg struct{}

// LogInterruptionMsg requests the interruption dialog
type LogInterruptionMsg struct{}

// RefreshMsg requests reloading sessions and insights
type RefreshMsg struct{}

// ToggleThemeMsg requests switching between light and dark
type ToggleThemeMsg struct{}

// LogoutMsg requests dropping the saved credential
type LogoutMsg struct{}

// Result messages delivered by commands.

// dashboardLoadedMsg carries the result of a dashboard load
type dashboardLoadedMsg struct {
	dashboard services.Dashboard
	err       error
}

// refreshTickMsg fires on every background refresh interval
type refreshTickMsg struct{}

// sessionStartedMsg carries the result of starting a session
type sessionStartedMsg struct {
	err     error
	session *domain.Session
}

// sessionEndedMsg carries the result of ending a session
type sessionEndedMsg struct {
	err     error
	session *domain.Session
}

// themeChangedMsg carries the result of a theme toggle
type themeChangedMsg struct {
	err   error
	theme domain.Theme
}

// loggedOutMsg carries the result of a logout
type loggedOutMsg struct {
	err error
}
