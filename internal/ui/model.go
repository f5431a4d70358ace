package ui

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hyperfocus/hyperfocus/internal/config"
	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
	"github.com/hyperfocus/hyperfocus/internal/services"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

type uiState int

const (
	stateDashboard uiState = iota
	stateHelp
	stateInterrupting
	stateLoggingIn
	stateStartingSession
	stateStats
)

// Services are the application services the TUI drives
type Services struct {
	Auth          *services.AuthService
	Dashboard     *services.DashboardService
	Interruptions *services.InterruptionService
	Notifications *services.NotificationService
	Preferences   *services.PreferencesService
	Sessions      *services.SessionService
	Stats         *services.StatsService
}

// Options configure the TUI
type Options struct {
	Clock           services.Clock
	DevMode         bool
	DurationPresets []domain.DurationPreset
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	RefreshInterval time.Duration // zero disables background refresh
	Theme           domain.Theme
}

// Model is the root Bubble Tea model: the dashboard plus its dialogs
type Model struct {
	devMode         bool
	errorManager    *ErrorManager
	height          int
	helpScreen      *Dialog
	history         *HistoryList
	insights        *InsightsPanel
	interruptForm   *InterruptionForm
	interruptDialog *Dialog
	keys            KeyMap
	loaded          bool
	loading         bool
	loginDialog     *Dialog
	presets         []domain.DurationPreset
	refreshInterval time.Duration
	services        Services
	spinner         spinner.Model
	startDialog     *Dialog
	state           uiState
	statsDialog     *Dialog
	styles          *theme.Styles
	timer           *FocusTimer
	tip             *Tip
	width           int
}

// NewModel creates the TUI model
func NewModel(opts Options, svc Services) *Model {
	styles := theme.New(opts.Theme)
	keys := NewKeyMap(opts.Keys)

	presets := opts.DurationPresets
	if len(presets) == 0 {
		presets = domain.DefaultDurationPresets
	}

	m := &Model{
		devMode:         opts.DevMode,
		errorManager:    NewErrorManager(opts.ErrorClearDelay),
		keys:            keys,
		presets:         presets,
		refreshInterval: opts.RefreshInterval,
		services:        svc,
		spinner:         spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner)),
		state:           stateDashboard,
		styles:          styles,
	}
	m.history = NewHistoryList(styles, &m.keys)
	m.insights = NewInsightsPanel(styles)
	m.interruptForm = NewInterruptionForm(svc.Interruptions, styles)
	m.timer = NewFocusTimer(styles, &m.keys, opts.Clock, svc.Notifications)

	if tips := keys.Tips(); len(tips) > 0 {
		tip := tips[rand.IntN(len(tips))]
		m.tip = &tip
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.loadDashboardCmd(), m.pollCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.updateBackground(msg); handled {
		return m, cmd
	}

	switch m.state {
	case stateDashboard:
		return m.updateDashboard(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateInterrupting:
		return m.updateInterrupting(msg)
	case stateLoggingIn:
		return m.updateLoggingIn(msg)
	case stateStartingSession:
		return m.updateStartingSession(msg)
	case stateStats:
		return m.updateStats(msg)
	}
	return m, nil
}

// updateBackground handles messages that arrive whatever dialog is open:
// timer ticks, command results and the refresh loop
func (m *Model) updateBackground(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timer.SetWidth(msg.Width)
		m.insights.SetWidth(msg.Width)
		// Dialogs size themselves from the same message
		return nil, m.state == stateDashboard

	case tickMsg:
		return m.timer.Update(msg), true

	case targetAlertMsg:
		logging.Logger.Debug("Target alert checked", "session_id", msg.sessionID, "raised", msg.raised)
		return nil, true

	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return nil, true

	case spinner.TickMsg:
		var cmd tea.Cmd
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		if m.state == stateStats {
			return tea.Batch(cmd, m.forwardToStats(msg)), true
		}
		return cmd, true

	case refreshTickMsg:
		next := m.pollCmd()
		if m.loading || m.state == stateLoggingIn {
			return next, true
		}
		m.loading = true
		return tea.Batch(next, m.loadDashboardCmd()), true

	case dashboardLoadedMsg:
		return m.handleDashboardLoaded(msg), true

	case sessionStartedMsg:
		return m.handleSessionStarted(msg), true

	case sessionEndedMsg:
		return m.handleSessionEnded(msg), true

	case themeChangedMsg:
		if msg.err != nil {
			return m.showError(fmt.Errorf("failed to save theme: %w", msg.err)), true
		}
		*m.styles = *theme.New(msg.theme)
		m.spinner.Style = m.styles.Spinner
		return nil, true

	case loggedOutMsg:
		if msg.err != nil {
			return m.showError(fmt.Errorf("failed to log out: %w", msg.err)), true
		}
		m.timer.Stop()
		m.history.SetSessions(nil)
		m.insights.SetInsights(nil)
		return m.openLogin(), true
	}
	return nil, false
}

func (m *Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		m.timer.Stop()
		return m, tea.Quit

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys, m.styles), m.styles, m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)

	case ShowStatsMsg:
		m.statsDialog = NewDialog("Focus Stats", NewStatsScreen(m.services.Stats, m.styles, &m.keys), m.styles, m.devMode)
		m.state = stateStats
		return m, m.statsDialog.Init()

	case NewSessionMsg:
		if m.timer.Active() {
			return m, m.showError(errors.New("a session is already running, stop it before starting another"))
		}
		m.startDialog = NewDialog("Start Focus Session", NewStartSessionForm(m.presets), m.styles, m.devMode)
		m.state = stateStartingSession
		return m, m.startDialog.Init()

	case EndSessionMsg:
		if !m.timer.Active() {
			return m, m.showError(domain.ErrNoActiveSession)
		}
		return m, m.endSessionCmd()

	case LogInterruptionMsg:
		session := m.timer.Session()
		if session == nil {
			return m, m.showError(fmt.Errorf("%w: start a session before logging interruptions", domain.ErrNoActiveSession))
		}
		m.interruptForm.Open(session.ID)
		m.interruptDialog = NewDialog("Log Interruption", m.interruptForm, m.styles, m.devMode)
		m.state = stateInterrupting
		return m, m.interruptDialog.Init()

	case RefreshMsg:
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadDashboardCmd())

	case ToggleThemeMsg:
		return m, m.toggleThemeCmd()

	case LogoutMsg:
		return m, m.logoutCmd()

	case tea.KeyMsg:
		if keyMatches(msg, m.keys.Application.ForceQuit) {
			m.timer.Stop()
			return m, tea.Quit
		}
		if action := m.keys.Dispatch(msg); action != nil {
			return m.updateDashboard(action)
		}
		return m, m.history.Update(msg)
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateDashboard
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.statsDialog.Update(msg)
	m.statsDialog = updated.(*Dialog)

	if content, ok := m.statsDialog.Content().(*StatsScreen); ok && content.Completed {
		m.state = stateDashboard
		m.statsDialog = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) forwardToStats(msg tea.Msg) tea.Cmd {
	if m.statsDialog == nil {
		return nil
	}
	_, cmd := m.statsDialog.Update(msg)
	return cmd
}

func (m *Model) updateStartingSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.startDialog.Update(msg)
	m.startDialog = updated.(*Dialog)

	if content, ok := m.startDialog.Content().(*StartSessionForm); ok && content.Completed {
		result := content.Result()
		m.state = stateDashboard
		m.startDialog = nil
		if result.Cancelled {
			return m, nil
		}
		return m, m.startSessionCmd(result.TargetMinutes)
	}
	return m, cmd
}

func (m *Model) updateInterrupting(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.interruptDialog.Update(msg)
	m.interruptDialog = updated.(*Dialog)

	if m.interruptForm.Completed {
		result := m.interruptForm.Result()
		m.state = stateDashboard
		m.interruptDialog = nil
		if result.Interruption != nil {
			return m, m.playSoundCmd(ports.SoundEventInterruption)
		}
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateLoggingIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.loginDialog.Update(msg)
	m.loginDialog = updated.(*Dialog)

	if content, ok := m.loginDialog.Content().(*LoginForm); ok && content.Completed {
		result := content.Result()
		m.state = stateDashboard
		m.loginDialog = nil
		if result.Cancelled {
			return m, m.showError(fmt.Errorf("%w: press %s to retry", domain.ErrNotLoggedIn, m.keys.Session.Refresh.Binding.Help().Key))
		}
		logging.Logger.Info("Signed in", "email", result.Email)
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadDashboardCmd())
	}
	return m, cmd
}

// openLogin shows the sign-in dialog, prefilled with the last known email
func (m *Model) openLogin() tea.Cmd {
	if m.state == stateLoggingIn {
		return nil
	}
	email := ""
	if m.services.Auth != nil {
		if cred, err := m.services.Auth.Credential(context.Background()); err == nil && cred != nil {
			email = cred.Email
		}
	}
	m.loginDialog = NewDialog("Sign in", NewLoginForm(m.services.Auth, m.styles, email), m.styles, m.devMode)
	m.state = stateLoggingIn
	return m.loginDialog.Init()
}

// showError puts err in the error bar and schedules its clearing
func (m *Model) showError(err error) tea.Cmd {
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

// handleFailure routes auth failures to the sign-in dialog and everything
// else to the error bar
func (m *Model) handleFailure(err error) tea.Cmd {
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotLoggedIn) {
		logging.Logger.Info("Authentication required", "error", err)
		return m.openLogin()
	}
	return m.showError(err)
}

func (m *Model) handleDashboardLoaded(msg dashboardLoadedMsg) tea.Cmd {
	m.loading = false
	if msg.err != nil {
		logging.Logger.Warn("Failed to load dashboard", "error", msg.err)
		return m.handleFailure(msg.err)
	}
	m.loaded = true
	m.insights.SetInsights(msg.dashboard.Insights)
	return m.applySnapshot(msg.dashboard.Snapshot)
}

func (m *Model) applySnapshot(snap domain.SessionSnapshot) tea.Cmd {
	historyCmd := m.history.SetSessions(snap.History)
	timerCmd := m.timer.SetSession(snap.Active, snap.TargetMinutes)
	return tea.Batch(historyCmd, timerCmd)
}

func (m *Model) handleSessionStarted(msg sessionStartedMsg) tea.Cmd {
	if msg.err != nil {
		return m.handleFailure(fmt.Errorf("failed to start session: %w", msg.err))
	}
	logging.Logger.Info("Session started", "session_id", msg.session.ID)
	return tea.Batch(
		m.applySnapshot(m.services.Sessions.Snapshot()),
		m.playSoundCmd(ports.SoundEventSessionStart),
	)
}

func (m *Model) handleSessionEnded(msg sessionEndedMsg) tea.Cmd {
	if msg.err != nil {
		return m.handleFailure(fmt.Errorf("failed to end session: %w", msg.err))
	}
	logging.Logger.Info("Session ended", "session_id", msg.session.ID)
	return tea.Batch(
		m.applySnapshot(m.services.Sessions.Snapshot()),
		m.playSoundCmd(ports.SoundEventSessionEnd),
	)
}

func (m *Model) loadDashboardCmd() tea.Cmd {
	dashboard := m.services.Dashboard
	return func() tea.Msg {
		dash, err := dashboard.Load(context.Background())
		return dashboardLoadedMsg{dashboard: dash, err: err}
	}
}

// pollCmd schedules the next background refresh
func (m *Model) pollCmd() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func (m *Model) startSessionCmd(target *int) tea.Cmd {
	sessions := m.services.Sessions
	return func() tea.Msg {
		s, err := sessions.StartSession(context.Background(), services.StartSessionParams{TargetMinutes: target})
		return sessionStartedMsg{err: err, session: s}
	}
}

func (m *Model) endSessionCmd() tea.Cmd {
	sessions := m.services.Sessions
	return func() tea.Msg {
		s, err := sessions.EndSession(context.Background())
		return sessionEndedMsg{err: err, session: s}
	}
}

func (m *Model) toggleThemeCmd() tea.Cmd {
	prefs := m.services.Preferences
	return func() tea.Msg {
		t, err := prefs.ToggleTheme(context.Background())
		return themeChangedMsg{err: err, theme: t}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	auth := m.services.Auth
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(context.Background())}
	}
}

func (m *Model) playSoundCmd(event string) tea.Cmd {
	notifications := m.services.Notifications
	if notifications == nil {
		return nil
	}
	return func() tea.Msg {
		notifications.PlaySoundForEvent(event)
		return nil
	}
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateInterrupting:
		if m.interruptDialog != nil {
			return m.interruptDialog.View()
		}
	case stateLoggingIn:
		if m.loginDialog != nil {
			return m.loginDialog.View()
		}
	case stateStartingSession:
		if m.startDialog != nil {
			return m.startDialog.View()
		}
	case stateStats:
		if m.statsDialog != nil {
			return m.statsDialog.View()
		}
	}
	return m.dashboardView()
}

func (m *Model) dashboardView() string {
	var top strings.Builder
	top.WriteString(renderHeader(m.styles, m.devMode, ""))
	top.WriteString(m.styles.Help.Render(renderShortHelp(m.styles, m.keys.ShortHelp(m.timer.Active()))))
	top.WriteString("\n")

	if !m.loaded && m.loading {
		top.WriteString(m.spinner.View() + " " + m.styles.Muted.Render("Loading sessions..."))
		top.WriteString("\n")
	} else {
		top.WriteString(m.timer.View())
		top.WriteString("\n")
		if insights := m.insights.View(); insights != "" {
			top.WriteString("\n" + insights + "\n")
		}
	}

	// Bottom section: 2 lines for the error or the tip
	bottom := " \n "
	if m.errorManager.HasError() {
		bottom = m.styles.Error.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	} else if m.tip != nil {
		bottom = RenderTip(m.styles, *m.tip) + "\n "
	}

	view := top.String()
	if m.loaded {
		listHeight := m.height - lipgloss.Height(view) - lipgloss.Height(bottom) - 3
		m.history.SetSize(m.width, listHeight)
		view += "\n" + m.history.View() + "\n"
	}
	return view + "\n" + bottom
}
