package config

import (
	"os"
	"path/filepath"
)

// GetHyperfocusHome returns HYPERFOCUS_HOME or the ~/.hyperfocus default
func GetHyperfocusHome() string {
	home := os.Getenv("HYPERFOCUS_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".hyperfocus"
		}
		return filepath.Join(homeDir, ".hyperfocus")
	}
	return ExpandPath(home)
}

// GetDBPath returns $HYPERFOCUS_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHyperfocusHome(), "state.db")
}

// GetSettingsPath returns $HYPERFOCUS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHyperfocusHome(), "settings.json")
}

// GetSSHDir returns $HYPERFOCUS_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHyperfocusHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
