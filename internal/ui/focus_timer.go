package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/services"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

const (
	timerMinWidth = 30
	timerMaxWidth = 60
)

// targetAlertMsg is returned once the target alert has been raised
type targetAlertMsg struct {
	raised    bool
	sessionID int
}

// FocusTimer shows the running session: the clock, the mode caption, the
// progress ring drawn as a bar and the available actions
type FocusTimer struct {
	alerted       bool
	clock         services.Clock
	keys          *KeyMap
	notifications *services.NotificationService
	progress      progress.Model
	session       *domain.Session
	state         domain.TimerState
	styles        *theme.Styles
	target        *int
	ticker        *secondTicker
	width         int
}

// NewFocusTimer creates an idle timer
func NewFocusTimer(styles *theme.Styles, keys *KeyMap, clock services.Clock, notifications *services.NotificationService) *FocusTimer {
	if clock == nil {
		clock = services.SystemClock{}
	}
	return &FocusTimer{
		clock:         clock,
		keys:          keys,
		notifications: notifications,
		progress: progress.New(
			progress.WithoutPercentage(),
			progress.WithWidth(timerMaxWidth-8),
		),
		styles: styles,
		ticker: newSecondTicker(),
		width:  timerMaxWidth,
	}
}

// SetSession points the timer at the running session, or idles it when
// session is nil. The ticker restarts only when the session changes.
func (t *FocusTimer) SetSession(session *domain.Session, targetMinutes *int) tea.Cmd {
	if session == nil {
		t.Stop()
		return nil
	}

	same := t.session != nil && t.session.ID == session.ID && t.ticker.Running()
	s := *session
	t.session = &s
	t.target = nil
	if targetMinutes != nil {
		m := *targetMinutes
		t.target = &m
	}
	if !same {
		t.alerted = false
	}

	alertCmd := t.recompute()
	if same {
		return alertCmd
	}
	return tea.Batch(t.ticker.Start(), alertCmd)
}

// Stop idles the timer and cancels pending ticks
func (t *FocusTimer) Stop() {
	t.ticker.Stop()
	t.session = nil
	t.state = domain.TimerState{}
	t.target = nil
}

// Active reports whether a session is being timed
func (t *FocusTimer) Active() bool {
	return t.session != nil
}

// Session returns the timed session, or nil
func (t *FocusTimer) Session() *domain.Session {
	return t.session
}

// State returns the last computed timer state
func (t *FocusTimer) State() domain.TimerState {
	return t.state
}

// SetWidth adapts the panel to the terminal width
func (t *FocusTimer) SetWidth(width int) {
	t.width = min(max(width-4, timerMinWidth), timerMaxWidth)
	t.progress.Width = t.width - 8
}

// Update handles ticks of the live generation; stale ticks are dropped
func (t *FocusTimer) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(tickMsg)
	if !ok || !t.ticker.Accept(tick) || t.session == nil {
		return nil
	}
	alertCmd := t.recompute()
	return tea.Batch(t.ticker.Next(), alertCmd)
}

// recompute derives the timer state at the current instant and returns a
// command raising the target alert the first time the target is reached
func (t *FocusTimer) recompute() tea.Cmd {
	elapsed := domain.ComputeElapsed(t.clock.Now(), t.session.StartTime)
	t.state = domain.NewTimerState(elapsed, t.target)

	if t.alerted || t.notifications == nil || !t.state.HasTarget() || elapsed < t.state.TargetSeconds() {
		return nil
	}
	t.alerted = true
	session := *t.session
	state := t.state
	notifications := t.notifications
	return func() tea.Msg {
		return targetAlertMsg{
			raised:    notifications.CheckTarget(&session, state),
			sessionID: session.ID,
		}
	}
}

// fillFraction converts the ring offset into the share of the bar to fill
func fillFraction(state domain.TimerState) float64 {
	c := domain.RingCircumference
	return (c - domain.ProgressOffset(state, c)) / c
}

// View renders the timer panel
func (t *FocusTimer) View() string {
	if t.session == nil {
		return t.idleView()
	}

	mode := t.state.Mode()
	color := t.styles.TimerColor(mode)

	clockStyle := t.styles.Clock
	if mode == domain.TimerOvertime {
		clockStyle = t.styles.ClockOvertime
	}

	status := t.styles.StatusActive.Render(domain.SymbolActive)
	if mode == domain.TimerOvertime {
		status = clockStyle.Render(domain.SymbolOvertime)
	}

	t.progress.FullColor = string(color)
	t.progress.EmptyColor = string(t.styles.Palette.Border)

	var details string
	if t.state.HasTarget() {
		details = fmt.Sprintf("Target %d min · started %s", *t.state.TargetMinutes, t.session.StartTime.Local().Format("15:04"))
	} else {
		details = fmt.Sprintf("Open-ended · started %s", t.session.StartTime.Local().Format("15:04"))
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		t.styles.Button.Render(t.keys.Session.Interrupt.Binding.Help().Key+"  Log Interruption"),
		" ",
		t.styles.ButtonDanger.Render(t.keys.Session.End.Binding.Help().Key+"  Stop Session"),
	)

	body := strings.Join([]string{
		status + " " + t.styles.ModeLabel.Render(mode.Label()),
		"",
		clockStyle.Render(t.state.Display()),
		"",
		t.progress.ViewAs(fillFraction(t.state)),
		t.styles.Muted.Render(details),
		"",
		buttons,
	}, "\n")

	return t.styles.Panel.Width(t.width).Render(body)
}

func (t *FocusTimer) idleView() string {
	body := strings.Join([]string{
		t.styles.StatusIdle.Render(domain.SymbolIdle) + " " + t.styles.ModeLabel.Render("No active session"),
		"",
		t.styles.Muted.Render("Ready to focus?"),
		"",
		t.styles.Button.Render(t.keys.Session.New.Binding.Help().Key + "  Start Session"),
	}, "\n")
	return t.styles.Panel.Width(t.width).Render(body)
}
