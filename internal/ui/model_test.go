package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	portsmocks "github.com/hyperfocus/hyperfocus/internal/ports/mocks"
	"github.com/hyperfocus/hyperfocus/internal/services"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

type testModel struct {
	*Model
	credentials *portsmocks.MockCredentialStore
}

func newTestModel(t *testing.T) testModel {
	t.Helper()
	credentials := portsmocks.NewMockCredentialStore(t)
	sessions := services.NewSessionService(portsmocks.NewMockSessionAPI(t), portsmocks.NewMockTargetDurationStore(t), nil)

	m := NewModel(Options{
		ErrorClearDelay: time.Second,
		Theme:           domain.ThemeDark,
	}, Services{
		Auth:          services.NewAuthService(portsmocks.NewMockAuthAPI(t), credentials),
		Dashboard:     services.NewDashboardService(sessions, services.NewInsightsService(portsmocks.NewMockInsightAPI(t))),
		Interruptions: services.NewInterruptionService(portsmocks.NewMockInterruptionAPI(t), nil),
		Preferences:   services.NewPreferencesService(portsmocks.NewMockPreferenceStore(t), string(domain.ThemeDark)),
		Sessions:      sessions,
		Stats:         services.NewStatsService(portsmocks.NewMockStatsAPI(t)),
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return testModel{Model: m, credentials: credentials}
}

func runningAt(id int, start time.Time) *domain.Session {
	return &domain.Session{ID: id, StartTime: start}
}

func TestModel_DashboardLoaded(t *testing.T) {
	m := newTestModel(t)
	end := time.Now().Add(-time.Hour)

	m.Update(dashboardLoadedMsg{dashboard: services.Dashboard{
		Insights: []domain.Insight{{Title: "Keep going", Type: domain.InsightInfo}},
		Snapshot: domain.SessionSnapshot{
			Active:        runningAt(5, time.Now().Add(-time.Minute)),
			History:       []domain.Session{{ID: 4, StartTime: end.Add(-25 * time.Minute), EndTime: &end}},
			TargetMinutes: intPtr(25),
		},
	}})

	assert.True(t, m.loaded)
	assert.False(t, m.loading)
	assert.True(t, m.timer.Active())
	assert.Equal(t, 1, m.history.Len())
	assert.Equal(t, 1, m.insights.Len())

	view := m.View()
	assert.Contains(t, view, "Past Sessions")
	assert.Contains(t, view, "Keep going")
}

func TestModel_UnauthorizedOpensLogin(t *testing.T) {
	m := newTestModel(t)
	m.credentials.EXPECT().GetCredential(mock.Anything).Return(&domain.Credential{Email: "ada@example.com"}, nil)

	m.Update(dashboardLoadedMsg{err: domain.ErrUnauthorized})

	assert.Equal(t, stateLoggingIn, m.state)
	require.NotNil(t, m.loginDialog)
	form, ok := m.loginDialog.Content().(*LoginForm)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", form.email)
}

func TestModel_LoadFailureShowsError(t *testing.T) {
	m := newTestModel(t)

	m.Update(dashboardLoadedMsg{err: errors.New("connection refused")})

	assert.Equal(t, stateDashboard, m.state)
	assert.EqualError(t, m.errorManager.GetError(), "connection refused")
}

func TestModel_StartAndEndFailuresAreReported(t *testing.T) {
	m := newTestModel(t)

	m.Update(sessionStartedMsg{err: errors.New("server unavailable")})
	assert.EqualError(t, m.errorManager.GetError(), "failed to start session: server unavailable")

	m.Update(sessionEndedMsg{err: errors.New("timeout")})
	assert.EqualError(t, m.errorManager.GetError(), "failed to end session: timeout")
}

func TestModel_NewSessionOnlyWhenIdle(t *testing.T) {
	m := newTestModel(t)

	m.Update(NewSessionMsg{})
	assert.Equal(t, stateStartingSession, m.state)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDashboard, m.state)

	m.timer.SetSession(runningAt(1, time.Now()), nil)
	m.Update(NewSessionMsg{})
	assert.Equal(t, stateDashboard, m.state)
	assert.True(t, m.errorManager.HasError())
}

func TestModel_InterruptionRequiresActiveSession(t *testing.T) {
	m := newTestModel(t)

	m.Update(LogInterruptionMsg{})
	assert.Equal(t, stateDashboard, m.state)
	assert.ErrorIs(t, m.errorManager.GetError(), domain.ErrNoActiveSession)

	m.Update(EndSessionMsg{})
	assert.ErrorIs(t, m.errorManager.GetError(), domain.ErrNoActiveSession)

	m.timer.SetSession(runningAt(2, time.Now()), nil)
	m.Update(LogInterruptionMsg{})
	assert.Equal(t, stateInterrupting, m.state)
	assert.Equal(t, 2, m.interruptForm.sessionID)
}

func TestModel_ThemeChangeRestylesComponents(t *testing.T) {
	m := newTestModel(t)

	m.Update(themeChangedMsg{theme: domain.ThemeLight})

	assert.Equal(t, theme.LightPalette, m.styles.Palette)
	assert.Same(t, m.styles, m.timer.styles)
	assert.Equal(t, theme.LightPalette, m.timer.styles.Palette)
}

func TestModel_HelpOpensAndCloses(t *testing.T) {
	m := newTestModel(t)

	m.Update(runeKey("?"))
	assert.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "Focus Session")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDashboard, m.state)
}

func TestModel_QuitStopsTimer(t *testing.T) {
	m := newTestModel(t)
	m.timer.SetSession(runningAt(1, time.Now()), nil)

	_, cmd := m.Update(QuitMsg{})

	require.NotNil(t, cmd)
	assert.False(t, m.timer.Active())
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_RefreshTickSkippedWhileLoading(t *testing.T) {
	m := newTestModel(t)
	m.loading = true

	_, cmd := m.Update(refreshTickMsg{})
	assert.Nil(t, cmd)
	assert.True(t, m.loading)
}

func TestModel_RefreshTickReloadsDashboard(t *testing.T) {
	m := newTestModel(t)
	m.loading = false

	_, cmd := m.Update(refreshTickMsg{})
	assert.NotNil(t, cmd)
	assert.True(t, m.loading)
}
