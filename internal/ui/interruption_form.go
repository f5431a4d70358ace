package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/services"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

const defaultInterruptionMinutes = "1"

// interruptionLoggedMsg carries the result of the submit request
type interruptionLoggedMsg struct {
	err          error
	interruption *domain.Interruption
}

// InterruptionFormResult is the outcome once the dialog closes
type InterruptionFormResult struct {
	Cancelled    bool
	Interruption *domain.Interruption
}

// InterruptionForm logs an interruption against the running session. The
// values survive between openings; a successful submit clears the
// description and duration but keeps the type.
type InterruptionForm struct {
	Completed   bool
	description string
	duration    string
	err         error
	form        *huh.Form
	result      InterruptionFormResult
	service     *services.InterruptionService
	sessionID   int
	styles      *theme.Styles
	submitting  bool
	typ         domain.InterruptionType
}

// NewInterruptionForm creates the form with its defaults
func NewInterruptionForm(service *services.InterruptionService, styles *theme.Styles) *InterruptionForm {
	f := &InterruptionForm{
		duration: defaultInterruptionMinutes,
		service:  service,
		styles:   styles,
		typ:      domain.DefaultInterruptionType,
	}
	f.buildForm()
	return f
}

// Open prepares the form for the given session
func (f *InterruptionForm) Open(sessionID int) {
	f.Completed = false
	f.err = nil
	f.result = InterruptionFormResult{}
	f.sessionID = sessionID
	f.submitting = false
	f.buildForm()
}

func (f *InterruptionForm) buildForm() {
	options := make([]huh.Option[domain.InterruptionType], len(domain.SelectableInterruptionTypes))
	for i, t := range domain.SelectableInterruptionTypes {
		options[i] = huh.NewOption(t.Label(), t)
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.InterruptionType]().
				Title("Type").
				Options(options...).
				Value(&f.typ),
			huh.NewInput().
				Title("Description").
				Placeholder("Description (e.g. Boss called)").
				CharLimit(domain.MaxDescriptionLength).
				Value(&f.description).
				Validate(validateDescription),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&f.duration).
				Validate(validateDurationMinutes),
		),
	)
}

func validateDescription(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(s) > domain.MaxDescriptionLength {
		return fmt.Errorf("at most %d characters", domain.MaxDescriptionLength)
	}
	return nil
}

func validateDurationMinutes(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a whole number of minutes, at least 1")
	}
	return nil
}

func (f *InterruptionForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *InterruptionForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(interruptionLoggedMsg); ok {
		return f, f.handleLogged(done)
	}

	if f.submitting {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		return f, f.submit()
	case huh.StateAborted:
		f.result.Cancelled = true
		f.Completed = true
		return f, nil
	}
	return f, cmd
}

// submit sends the interruption; the form stays open until the reply
func (f *InterruptionForm) submit() tea.Cmd {
	minutes, _ := strconv.Atoi(strings.TrimSpace(f.duration))
	params := services.LogInterruptionParams{
		Description:     f.description,
		DurationMinutes: minutes,
		Type:            f.typ,
	}
	f.submitting = true
	f.err = nil

	service := f.service
	sessionID := f.sessionID
	return func() tea.Msg {
		interruption, err := service.LogInterruption(context.Background(), sessionID, params)
		return interruptionLoggedMsg{err: err, interruption: interruption}
	}
}

func (f *InterruptionForm) handleLogged(msg interruptionLoggedMsg) tea.Cmd {
	f.submitting = false

	if msg.err != nil {
		logging.Logger.Error("Failed to log interruption", "session_id", f.sessionID, "error", msg.err)
		f.err = msg.err
		f.buildForm()
		return f.form.Init()
	}

	f.result.Interruption = msg.interruption
	f.description = ""
	f.duration = defaultInterruptionMinutes
	f.Completed = true
	return nil
}

func (f *InterruptionForm) View() string {
	var b strings.Builder
	if f.err != nil {
		b.WriteString(f.styles.Error.Render(interruptionErrorText(f.err)))
		b.WriteString("\n\n")
	}
	if f.submitting {
		b.WriteString(f.styles.Muted.Render("Saving..."))
		return b.String()
	}
	b.WriteString(f.form.View())
	return b.String()
}

// interruptionErrorText is the message shown above the form after a failed
// submit, including the server's reason when there is one
func interruptionErrorText(err error) string {
	if errors.Is(err, domain.ErrValidation) {
		return err.Error()
	}
	return "Error logging interruption: " + err.Error()
}

// Result returns the dialog outcome
func (f *InterruptionForm) Result() InterruptionFormResult {
	return f.result
}
