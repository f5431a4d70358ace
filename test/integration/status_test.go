package integration_test

import (
	"testing"

	"github.com/hyperfocus/hyperfocus/test/integration/harness"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, env *harness.TestEnvironment)
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "logged out prints a placeholder",
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "○ ?")
			},
		},
		{
			name: "idle",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.Login()
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "○ idle")
			},
		},
		{
			name: "running open-ended",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.Login()
				harness.AssertSuccess(t, harness.RunCommand(t, env, "sessions", "start"))
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "● 00:")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			// status never fails so it can sit in a prompt
			result := harness.RunCommand(t, env, "status")
			harness.AssertSuccess(t, result)

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
