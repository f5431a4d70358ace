package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "interrupt", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	// Build set of valid names for quick lookup
	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	// Validate each configured binding
	for name, keys := range k {
		// Check if the key name is valid
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		// Check for empty values and duplicates
		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Defaults applied when neither flags, env vars nor settings.json say otherwise
const (
	DefaultAPIURL          = "http://localhost:8000/api/v1"
	DefaultErrorClearDelay = 10
	DefaultMaxLogFiles     = 1000
	DefaultRefreshInterval = 30
)

// Settings represents the structure of $HYPERFOCUS_HOME/settings.json
type Settings struct {
	APIURL               string            `json:"api_url,omitempty"`
	Debug                *bool             `json:"debug,omitempty"`
	DefaultDurations     IntArray          `json:"default_durations,omitempty"`
	DesktopNotifications *bool             `json:"desktop_notifications,omitempty"`
	ErrorClearDelay      *int              `json:"error_clear_delay,omitempty"`
	Keys                 KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles          *int              `json:"max_log_files,omitempty"`
	RefreshInterval      *int              `json:"refresh_interval,omitempty"`
	SoundEnabled         *bool             `json:"sound_enabled,omitempty"`
	Theme                string            `json:"theme,omitempty"`
}

// IntArray supports both JSON arrays and comma-separated strings
type IntArray []int

// UnmarshalJSON implements custom unmarshaling for IntArray
func (ia *IntArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []int
	if err := json.Unmarshal(data, &arr); err == nil {
		*ia = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parts := parseCommaSeparated(str)
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", p, err)
		}
		result = append(result, v)
	}
	*ia = result
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $HYPERFOCUS_HOME/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $HYPERFOCUS_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
