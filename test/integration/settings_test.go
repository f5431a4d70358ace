package integration_test

import (
	"testing"

	"github.com/hyperfocus/hyperfocus/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "meta")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, env.SettingsPath())
	harness.AssertStdoutContains(t, result, "api_url")

	jsonResult := harness.RunCommand(t, env, "settings", "meta", "--format", "json")
	harness.AssertSuccess(t, jsonResult)
	harness.AssertJSONContains(t, jsonResult, "settings_file", env.SettingsPath())
}

func TestSettingsTheme(t *testing.T) {
	tests := []struct {
		name         string
		steps        [][]string
		wantExitCode int
		wantStdout   string
		wantStderr   string
	}{
		{
			name:       "default is dark",
			steps:      [][]string{{"settings", "theme"}},
			wantStdout: "Theme: dark",
		},
		{
			name:       "set light",
			steps:      [][]string{{"settings", "theme", "light"}, {"settings", "theme"}},
			wantStdout: "Theme: light",
		},
		{
			name:       "toggle",
			steps:      [][]string{{"settings", "theme", "--toggle"}},
			wantStdout: "Theme: light",
		},
		{
			name:         "unknown theme",
			steps:        [][]string{{"settings", "theme", "sepia"}},
			wantExitCode: 1,
			wantStderr:   "theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			var result harness.CommandResult
			for _, args := range tt.steps {
				result = harness.RunCommand(t, env, args...)
			}

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}
			if tt.wantStdout != "" {
				harness.AssertStdoutContains(t, result, tt.wantStdout)
			}
			if tt.wantStderr != "" {
				harness.AssertStderrContains(t, result, tt.wantStderr)
			}
		})
	}
}

func TestSettingsEdit(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "edit", "--editor", "true")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Saved "+env.SettingsPath())
	harness.AssertFileExists(t, env.SettingsPath())
}
