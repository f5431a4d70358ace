package integration_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperfocus/hyperfocus/test/integration/harness"
)

type sessionJSON struct {
	EndTime *string `json:"end_time"`
	ID      int     `json:"id"`
}

type snapshotJSON struct {
	Active        *sessionJSON  `json:"active"`
	History       []sessionJSON `json:"history"`
	TargetMinutes *int          `json:"target_minutes"`
}

func TestSessionsList(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, env *harness.TestEnvironment)
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "empty",
			args: []string{"sessions", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No active session")
				harness.AssertStdoutContains(t, result, "No past sessions found.")
			},
		},
		{
			name: "history newest first",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				base := time.Now().Add(-48 * time.Hour)
				env.API.AddEndedSession(base, 25*time.Minute)
				env.API.AddEndedSession(base.Add(time.Hour), 50*time.Minute)
			},
			args: []string{"sessions", "list", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var snap snapshotJSON
				harness.AssertValidJSON(t, result, &snap)
				assert.Nil(t, snap.Active)
				require.Len(t, snap.History, 2)
				assert.Greater(t, snap.History[0].ID, snap.History[1].ID)
			},
		},
		{
			name: "limit",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				base := time.Now().Add(-48 * time.Hour)
				for i := range 3 {
					env.API.AddEndedSession(base.Add(time.Duration(i)*time.Hour), 25*time.Minute)
				}
			},
			args: []string{"sessions", "list", "--limit", "1", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var snap snapshotJSON
				harness.AssertValidJSON(t, result, &snap)
				assert.Len(t, snap.History, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.Login()

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertSuccess(t, result)

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestSessionsLifecycle(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.Login()

	start := harness.RunCommand(t, env, "sessions", "start", "--duration", "25")
	harness.AssertSuccess(t, start)
	harness.AssertStdoutContains(t, start, "(target 25 min)")

	// The target survives between invocations through the local store
	list := harness.RunCommand(t, env, "sessions", "list", "--format", "json")
	harness.AssertSuccess(t, list)
	var snap snapshotJSON
	harness.AssertValidJSON(t, list, &snap)
	require.NotNil(t, snap.Active)
	require.NotNil(t, snap.TargetMinutes)
	assert.Equal(t, 25, *snap.TargetMinutes)

	again := harness.RunCommand(t, env, "sessions", "start")
	harness.AssertFailure(t, again)
	harness.AssertStderrContains(t, again, "already running")

	status := harness.RunCommand(t, env, "status")
	harness.AssertSuccess(t, status)
	harness.AssertStdoutContains(t, status, "●")

	interrupt := harness.RunCommand(t, env, "interrupt", "Slack ping", "-t", "digital", "-m", "3")
	harness.AssertSuccess(t, interrupt)
	harness.AssertStdoutContains(t, interrupt, "on session #"+strconv.Itoa(snap.Active.ID))

	end := harness.RunCommand(t, env, "sessions", "end")
	harness.AssertSuccess(t, end)
	harness.AssertStdoutContains(t, end, "Ended session #"+strconv.Itoa(snap.Active.ID))

	view := harness.RunCommand(t, env, "sessions", "view", strconv.Itoa(snap.Active.ID))
	harness.AssertSuccess(t, view)
	harness.AssertStdoutContains(t, view, "Slack ping")
	harness.AssertStdoutContains(t, view, "Time lost: 3m")

	after := harness.RunCommand(t, env, "sessions", "end")
	harness.AssertFailure(t, after)
	harness.AssertStderrContains(t, after, "no active session")
}

func TestSessionsStartOpenEnded(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.Login()

	result := harness.RunCommand(t, env, "sessions", "start")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "(open-ended)")

	list := harness.RunCommand(t, env, "sessions", "list", "--format", "json")
	var snap snapshotJSON
	harness.AssertValidJSON(t, list, &snap)
	require.NotNil(t, snap.Active)
	assert.Nil(t, snap.TargetMinutes)
}

func TestInterruptWithoutSession(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.Login()

	result := harness.RunCommand(t, env, "interrupt", "phone call")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "no active session")
}

func TestSessionsViewNotFound(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.Login()

	result := harness.RunCommand(t, env, "sessions", "view", "999")
	harness.AssertFailure(t, result)
}
