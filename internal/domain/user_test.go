package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistration_Validate(t *testing.T) {
	tests := []struct {
		name    string
		reg     Registration
		wantErr bool
	}{
		{"valid", Registration{Name: "Ada", Email: "ada@example.com", Password: "supersecret"}, false},
		{"missing name", Registration{Email: "ada@example.com", Password: "supersecret"}, true},
		{"bad email", Registration{Name: "Ada", Email: "not-an-email", Password: "supersecret"}, true},
		{"short password", Registration{Name: "Ada", Email: "ada@example.com", Password: "short"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseStatsRange(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"", "7d", false},
		{"7d", "7d", false},
		{"30D", "30d", false},
		{"14", "14d", false},
		{"0d", "", true},
		{"week", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatsRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTheme(t *testing.T) {
	theme, err := ParseTheme("")
	assert.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
	assert.Equal(t, ThemeDark, theme.Toggle())
	assert.Equal(t, ThemeLight, theme.Toggle().Toggle())

	_, err = ParseTheme("solarized")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPresetsFromMinutes(t *testing.T) {
	assert.Equal(t, DefaultDurationPresets, PresetsFromMinutes(nil))

	presets := PresetsFromMinutes([]int{20, 0, 45})
	assert.Len(t, presets, 3)
	assert.Equal(t, 20, *presets[0].Minutes)
	assert.Equal(t, 45, *presets[1].Minutes)
	assert.Nil(t, presets[2].Minutes)
}
