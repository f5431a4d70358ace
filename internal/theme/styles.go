package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// Styles holds every style the TUI renders with for one palette
type Styles struct {
	Palette Palette
	Theme   domain.Theme

	// Main UI
	Help         lipgloss.Style
	HelpLabel    lipgloss.Style
	HelpShortcut lipgloss.Style
	Muted        lipgloss.Style
	Normal       lipgloss.Style
	Title        lipgloss.Style

	// Dialog header
	AppName  lipgloss.Style
	Subtitle lipgloss.Style
	Tagline  lipgloss.Style
	Version  lipgloss.Style

	// Help screen
	HelpDesc  lipgloss.Style
	HelpGroup lipgloss.Style
	HelpKey   lipgloss.Style

	// Tips
	TipKey  lipgloss.Style
	TipText lipgloss.Style

	// Focus timer
	Button        lipgloss.Style
	ButtonDanger  lipgloss.Style
	Clock         lipgloss.Style
	ClockOvertime lipgloss.Style
	ModeLabel     lipgloss.Style
	Panel         lipgloss.Style
	StatusActive  lipgloss.Style
	StatusIdle    lipgloss.Style

	// History and insights
	HistoryDate     lipgloss.Style
	HistoryDuration lipgloss.Style
	InsightCard     lipgloss.Style
	InsightDesc     lipgloss.Style
	InsightTitle    lipgloss.Style
	SectionHeader   lipgloss.Style

	// Stats chart
	ChartBar    lipgloss.Style
	ChartLegend lipgloss.Style
	ChartLost   lipgloss.Style

	Error   lipgloss.Style
	Spinner lipgloss.Style
}

// New builds the styles of a theme
func New(t domain.Theme) *Styles {
	p := PaletteFor(t)

	return &Styles{
		Palette: p,
		Theme:   t,

		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(1, 0),
		HelpLabel: lipgloss.NewStyle().
			Foreground(p.Subtle),
		HelpShortcut: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Normal: lipgloss.NewStyle().
			Foreground(p.Normal),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(1, 0),

		AppName: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Tagline: lipgloss.NewStyle().
			Foreground(p.Normal),
		Version: lipgloss.NewStyle().
			Foreground(p.Muted),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Subtle),
		HelpGroup: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.HelpGroup).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true).
			Width(25),

		TipKey: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true),
		TipText: lipgloss.NewStyle().
			Foreground(p.Subtle),

		Button: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 2),
		ButtonDanger: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Danger).
			Padding(0, 2),
		Clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Highlight),
		ClockOvertime: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Overtime),
		ModeLabel: lipgloss.NewStyle().
			Foreground(p.Subtle),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
		StatusActive: lipgloss.NewStyle().
			Foreground(p.Success),
		StatusIdle: lipgloss.NewStyle().
			Foreground(p.Muted),

		HistoryDate: lipgloss.NewStyle().
			Foreground(p.Normal),
		HistoryDuration: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		InsightCard: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1).
			MarginBottom(1),
		InsightDesc: lipgloss.NewStyle().
			Foreground(p.Subtle),
		InsightTitle: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true),
		SectionHeader: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true).
			MarginBottom(1),

		ChartBar: lipgloss.NewStyle().
			Foreground(p.ChartBar),
		ChartLegend: lipgloss.NewStyle().
			Foreground(p.Subtle),
		ChartLost: lipgloss.NewStyle().
			Foreground(p.ChartLost),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Spinner: lipgloss.NewStyle().
			Foreground(p.Spinner),
	}
}

// TimerColor is the ring color for a timer mode
func (s *Styles) TimerColor(mode domain.TimerMode) Color {
	switch mode {
	case domain.TimerOvertime:
		return s.Palette.Overtime
	case domain.TimerOpenEnded:
		return s.Palette.OpenEnd
	default:
		return s.Palette.Focus
	}
}

// InsightAccent is the accent color of an insight type
func (s *Styles) InsightAccent(t domain.InsightType) Color {
	switch t {
	case domain.InsightProductivity:
		return s.Palette.Primary
	case domain.InsightWarning:
		return s.Palette.Warning
	case domain.InsightSuccess:
		return s.Palette.Success
	default:
		return s.Palette.Secondary
	}
}
