package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Palette is the set of colors one theme draws with
type Palette struct {
	// Brand
	Primary   Color // app name, titles, progress ring
	Secondary Color // subtitles

	// Timer states
	Focus    Color // countdown within target
	OpenEnd  Color // open-ended "Deep Work"
	Overtime Color // past the target

	// Semantic
	Danger    Color
	Error     Color
	Highlight Color
	Muted     Color
	Normal    Color
	Subtle    Color
	Success   Color
	Warning   Color

	// Accents
	Border    Color
	ChartBar  Color
	ChartLost Color
	HelpGroup Color
	Spinner   Color
}

// DarkPalette is used on dark terminals
var DarkPalette = Palette{
	Primary:   "99",  // Purple
	Secondary: "86",  // Cyan
	Focus:     "99",  // Purple
	OpenEnd:   "86",  // Cyan
	Overtime:  "203", // Coral red
	Danger:    "203",
	Error:     "196", // Bright red
	Highlight: "255", // White
	Muted:     "241", // Gray
	Normal:    "250",
	Subtle:    "245",
	Success:   "78",  // Green
	Warning:   "214", // Orange
	Border:    "238",
	ChartBar:  "99",
	ChartLost: "203",
	HelpGroup: "141",
	Spinner:   "205", // Pink
}

// LightPalette is used on light terminals
var LightPalette = Palette{
	Primary:   "55",  // Deep purple
	Secondary: "31",  // Teal
	Focus:     "55",
	OpenEnd:   "31",
	Overtime:  "160", // Red
	Danger:    "160",
	Error:     "160",
	Highlight: "232", // Near black
	Muted:     "244",
	Normal:    "236",
	Subtle:    "240",
	Success:   "28",  // Green
	Warning:   "130", // Brown orange
	Border:    "250",
	ChartBar:  "55",
	ChartLost: "160",
	HelpGroup: "91",
	Spinner:   "162",
}

// PaletteFor returns the palette of a theme
func PaletteFor(t domain.Theme) Palette {
	if t == domain.ThemeDark {
		return DarkPalette
	}
	return LightPalette
}
