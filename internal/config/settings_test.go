package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("HYPERFOCUS_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ParsesFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HYPERFOCUS_HOME", home)

	content := `{
		"api_url": "https://focus.example.com/api/v1",
		"debug": true,
		"default_durations": "20, 40",
		"error_clear_delay": 5,
		"keys": {"interrupt": "I", "help": ["h", "?"]},
		"theme": "dark"
	}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "https://focus.example.com/api/v1", settings.APIURL)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	assert.Equal(t, IntArray{20, 40}, settings.DefaultDurations)
	require.NotNil(t, settings.ErrorClearDelay)
	assert.Equal(t, 5, *settings.ErrorClearDelay)
	assert.Equal(t, KeyBindingValue{"I"}, settings.Keys["interrupt"])
	assert.Equal(t, KeyBindingValue{"h", "?"}, settings.Keys["help"])
	assert.Equal(t, "dark", settings.Theme)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HYPERFOCUS_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveSettings_CreatesHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv("HYPERFOCUS_HOME", home)

	require.NoError(t, SaveSettings(&Settings{Theme: "light", DefaultDurations: IntArray{25}}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.Theme)
	assert.Equal(t, IntArray{25}, loaded.DefaultDurations)
}

func TestIntArray_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected IntArray
		wantErr  bool
	}{
		{`[25, 50]`, IntArray{25, 50}, false},
		{`"25,50"`, IntArray{25, 50}, false},
		{`""`, IntArray{}, false},
		{`"25,abc"`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got IntArray
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"help", "interrupt", "quit"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil config", nil, ""},
		{"valid override", KeyBindingsConfig{"interrupt": {"I"}}, ""},
		{"unknown name", KeyBindingsConfig{"archive": {"a"}}, "unknown key binding 'archive'"},
		{"empty value", KeyBindingsConfig{"help": {""}}, "contains empty value"},
		{"duplicate", KeyBindingsConfig{"help": {"x"}, "quit": {"x"}}, "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"api_url", "debug", "default_durations", "keys", "theme", "refresh_interval"} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, DefaultAPIURL, example["api_url"])
	assert.Equal(t, false, example["debug"])
}

func TestPaths_FollowHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HYPERFOCUS_HOME", home)

	assert.Equal(t, home, GetHyperfocusHome())
	assert.Equal(t, filepath.Join(home, "state.db"), GetDBPath())
	assert.Equal(t, filepath.Join(home, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(home, "ssh"), GetSSHDir())
}
