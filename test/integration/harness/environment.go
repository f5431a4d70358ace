package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own
// HYPERFOCUS_HOME and fake API server.
type TestEnvironment struct {
	API            *FakeAPI
	HyperfocusHome string
	extraEnv       map[string]string
	tb             testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp
// HYPERFOCUS_HOME and a fresh fake API. Both are cleaned up when the test
// completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		API:            NewFakeAPI(tb),
		HyperfocusHome: tb.TempDir(),
		extraEnv:       make(map[string]string),
		tb:             tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out HYPERFOCUS_* variables and sets:
//   - HYPERFOCUS_HOME to the temp directory
//   - HYPERFOCUS_API_URL to the fake API
//   - HYPERFOCUS_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "HYPERFOCUS_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"HYPERFOCUS_HOME="+e.HyperfocusHome,
		"HYPERFOCUS_API_URL="+e.API.URL(),
		"HYPERFOCUS_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.HyperfocusHome, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.HyperfocusHome, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// Login registers the default test user with the fake API and logs the CLI in.
func (e *TestEnvironment) Login() {
	e.tb.Helper()
	e.API.AddUser(TestEmail, TestPassword, "Test User")
	result := RunCommand(e.tb, e, "login", "--email", TestEmail, "--password", TestPassword)
	AssertSuccess(e.tb, result)
}
