// Package harness provides utilities for integration testing the hyperfocus CLI.
// It handles binary compilation, environment isolation, a fake API server and
// command execution.
//
// Environment variables managed:
//   - HYPERFOCUS_HOME: Isolated per test (temp directory)
//   - HYPERFOCUS_API_URL: Points at the test's fake API
//   - HYPERFOCUS_DEBUG: Disabled to reduce noise
//   - HYPERFOCUS_TOKEN: Cleared so the saved login is used
package harness
