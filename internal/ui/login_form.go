package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/services"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

type loginMode string

const (
	loginModeLogin    loginMode = "login"
	loginModeRegister loginMode = "register"
)

// loginDoneMsg carries the result of a login or registration
type loginDoneMsg struct {
	email string
	err   error
}

// LoginFormResult is the outcome once the dialog closes
type LoginFormResult struct {
	Cancelled bool
	Email     string
}

// LoginForm signs in, or creates an account and signs in
type LoginForm struct {
	Completed  bool
	auth       *services.AuthService
	email      string
	err        error
	form       *huh.Form
	mode       loginMode
	name       string
	password   string
	result     LoginFormResult
	styles     *theme.Styles
	submitting bool
}

// NewLoginForm creates the sign-in dialog, prefilled with the last email
func NewLoginForm(auth *services.AuthService, styles *theme.Styles, email string) *LoginForm {
	f := &LoginForm{
		auth:   auth,
		email:  email,
		mode:   loginModeLogin,
		styles: styles,
	}
	f.buildForm()
	return f
}

func (f *LoginForm) buildForm() {
	f.password = ""
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[loginMode]().
				Title("Welcome").
				Options(
					huh.NewOption("Log in", loginModeLogin),
					huh.NewOption("Create an account", loginModeRegister),
				).
				Value(&f.mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return f.mode != loginModeRegister }),
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&f.email).
				Validate(domain.ValidateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(f.validatePassword),
		),
	)
}

func (f *LoginForm) validatePassword(s string) error {
	if s == "" {
		return fmt.Errorf("password is required")
	}
	if f.mode == loginModeRegister && len(s) < domain.MinPasswordLength {
		return fmt.Errorf("at least %d characters", domain.MinPasswordLength)
	}
	return nil
}

func (f *LoginForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *LoginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(loginDoneMsg); ok {
		return f, f.handleDone(done)
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

func (f *LoginForm) submit() tea.Cmd {
	f.submitting = true
	f.err = nil

	auth := f.auth
	mode := f.mode
	reg := domain.Registration{
		Email:    strings.TrimSpace(f.email),
		Name:     strings.TrimSpace(f.name),
		Password: f.password,
	}
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if mode == loginModeRegister {
			_, err = auth.Register(ctx, reg)
		} else {
			_, err = auth.Login(ctx, reg.Email, reg.Password)
		}
		return loginDoneMsg{email: reg.Email, err: err}
	}
}

func (f *LoginForm) handleDone(msg loginDoneMsg) tea.Cmd {
	f.submitting = false
	if msg.err != nil {
		logging.Logger.Warn("Sign-in failed", "mode", f.mode, "error", msg.err)
		f.err = msg.err
		f.buildForm()
		return f.form.Init()
	}

	f.result.Email = msg.email
	f.Completed = true
	return nil
}

func (f *LoginForm) View() string {
	var b strings.Builder
	if f.err != nil {
		b.WriteString(f.styles.Error.Render(f.err.Error()))
		b.WriteString("\n\n")
	}
	if f.submitting {
		b.WriteString(f.styles.Muted.Render("Signing in..."))
		return b.String()
	}
	b.WriteString(f.form.View())
	return b.String()
}

// Result returns the dialog outcome
func (f *LoginForm) Result() LoginFormResult {
	return f.result
}
