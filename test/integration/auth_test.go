package integration_test

import (
	"testing"

	"github.com/hyperfocus/hyperfocus/test/integration/harness"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "valid credentials",
			args:         []string{"login", "--email", harness.TestEmail, "--password", harness.TestPassword},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Logged in as "+harness.TestEmail)
				harness.AssertFileExists(t, env.DBPath())
			},
		},
		{
			name:         "wrong password",
			args:         []string{"login", "--email", harness.TestEmail, "--password", "nope"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "Incorrect email or password")
			},
		},
		{
			name:         "malformed email is rejected before calling the API",
			args:         []string{"login", "--email", "not-an-email", "--password", "x"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "email")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.API.AddUser(harness.TestEmail, harness.TestPassword, "Test User")

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestRegisterLogsIn(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "register",
		"--email", "new@example.com", "--name", "New User", "--password", "longpassword")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Account created for New User <new@example.com>")

	whoami := harness.RunCommand(t, env, "whoami")
	harness.AssertSuccess(t, whoami)
	harness.AssertStdoutContains(t, whoami, "new@example.com")
}

func TestWhoami(t *testing.T) {
	t.Run("logged in", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.Login()

		result := harness.RunCommand(t, env, "whoami", "--format", "json")
		harness.AssertSuccess(t, result)
		harness.AssertJSONContains(t, result, "email", harness.TestEmail)
	})

	t.Run("logged out", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.Login()

		harness.AssertSuccess(t, harness.RunCommand(t, env, "logout"))

		result := harness.RunCommand(t, env, "whoami")
		harness.AssertFailure(t, result)
	})

	t.Run("token from environment", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.SetEnv("HYPERFOCUS_TOKEN", "bogus")

		result := harness.RunCommand(t, env, "whoami")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "not logged in")
	})
}
