package services

import (
	"context"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// themePreferenceKey is the preferences row holding the theme
const themePreferenceKey = "theme"

// PreferencesService reads and writes persisted user preferences
type PreferencesService struct {
	defaultTheme domain.Theme
	store        ports.PreferenceStore
}

// NewPreferencesService creates a new PreferencesService. defaultTheme
// (typically from settings.json) applies until the user toggles the theme.
func NewPreferencesService(store ports.PreferenceStore, defaultTheme string) *PreferencesService {
	theme, err := domain.ParseTheme(defaultTheme)
	if err != nil {
		logging.Logger.Warn("Invalid default theme, using light", "theme", defaultTheme)
		theme = domain.ThemeLight
	}
	return &PreferencesService{defaultTheme: theme, store: store}
}

// Theme returns the persisted theme or the default
func (s *PreferencesService) Theme(ctx context.Context) domain.Theme {
	value, found, err := s.store.GetPreference(ctx, themePreferenceKey)
	if err != nil {
		logging.Logger.Warn("Failed to read theme preference", "error", err)
		return s.defaultTheme
	}
	if !found {
		return s.defaultTheme
	}
	theme, err := domain.ParseTheme(value)
	if err != nil {
		return s.defaultTheme
	}
	return theme
}

// SetTheme persists the theme
func (s *PreferencesService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if _, err := domain.ParseTheme(string(theme)); err != nil {
		return err
	}
	return s.store.SetPreference(ctx, themePreferenceKey, string(theme))
}

// ToggleTheme flips light/dark and returns the new theme
func (s *PreferencesService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	next := s.Theme(ctx).Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return s.Theme(ctx), err
	}
	logging.Logger.Info("Theme changed", "theme", next)
	return next, nil
}
