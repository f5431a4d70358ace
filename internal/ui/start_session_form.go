package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// StartSessionFormResult is the outcome of the start-session dialog
type StartSessionFormResult struct {
	Cancelled     bool
	TargetMinutes *int
}

// StartSessionForm lets the user pick a target duration preset
type StartSessionForm struct {
	Completed bool
	choice    int
	form      *huh.Form
	presets   []domain.DurationPreset
	result    StartSessionFormResult
}

// NewStartSessionForm builds the dialog from the configured presets
func NewStartSessionForm(presets []domain.DurationPreset) *StartSessionForm {
	sf := &StartSessionForm{presets: presets}

	options := make([]huh.Option[int], len(presets))
	for i, p := range presets {
		options[i] = huh.NewOption(p.Label(), i)
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How long do you want to focus?").
				Description("Open-ended sessions count up until you stop them").
				Options(options...).
				Value(&sf.choice),
		),
	)
	return sf
}

func (sf *StartSessionForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *StartSessionForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	switch sf.form.State {
	case huh.StateCompleted:
		sf.Completed = true
		if sf.choice >= 0 && sf.choice < len(sf.presets) {
			sf.result.TargetMinutes = sf.presets[sf.choice].Minutes
		}
		return sf, nil
	case huh.StateAborted:
		sf.Completed = true
		sf.result.Cancelled = true
		return sf, nil
	}

	return sf, cmd
}

func (sf *StartSessionForm) View() string {
	return sf.form.View()
}

// Result returns the chosen target, nil for open-ended
func (sf *StartSessionForm) Result() StartSessionFormResult {
	return sf.result
}
