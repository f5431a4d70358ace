package domain

import "fmt"

// DurationPreset is a named target duration offered when starting a session
type DurationPreset struct {
	Minutes *int
	Name    string
}

// Label renders the preset for menus
func (p DurationPreset) Label() string {
	if p.Minutes == nil {
		return p.Name
	}
	return fmt.Sprintf("%s (%d min)", p.Name, *p.Minutes)
}

func minutes(m int) *int { return &m }

// DefaultDurationPresets are offered when no custom presets are configured
var DefaultDurationPresets = []DurationPreset{
	{Name: "Pomodoro", Minutes: minutes(25)},
	{Name: "Short Focus", Minutes: minutes(15)},
	{Name: "Deep Work", Minutes: minutes(50)},
	{Name: "Long Session", Minutes: minutes(90)},
	{Name: "Open-ended"},
}

// PresetsFromMinutes builds the preset menu from configured minute values.
// The open-ended option is always appended.
func PresetsFromMinutes(values []int) []DurationPreset {
	if len(values) == 0 {
		return DefaultDurationPresets
	}
	presets := make([]DurationPreset, 0, len(values)+1)
	for _, v := range values {
		if v <= 0 {
			continue
		}
		presets = append(presets, DurationPreset{Name: "Focus", Minutes: minutes(v)})
	}
	return append(presets, DurationPreset{Name: "Open-ended"})
}
