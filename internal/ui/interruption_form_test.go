package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "Boss called", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"at the limit", strings.Repeat("a", domain.MaxDescriptionLength), false},
		{"over the limit", strings.Repeat("a", domain.MaxDescriptionLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDescription(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDurationMinutes(t *testing.T) {
	assert.NoError(t, validateDurationMinutes("1"))
	assert.NoError(t, validateDurationMinutes(" 15 "))
	assert.Error(t, validateDurationMinutes("0"))
	assert.Error(t, validateDurationMinutes("-3"))
	assert.Error(t, validateDurationMinutes("abc"))
	assert.Error(t, validateDurationMinutes(""))
}

func TestInterruptionForm_SuccessResetsFieldsButKeepsType(t *testing.T) {
	form := NewInterruptionForm(nil, theme.New(domain.ThemeLight))
	form.Open(4)
	form.typ = domain.InterruptionDigital
	form.description = "Dentist called"
	form.duration = "5"
	form.submitting = true

	logged := &domain.Interruption{ID: 9, SessionID: 4}
	form.Update(interruptionLoggedMsg{interruption: logged})

	assert.True(t, form.Completed)
	assert.Equal(t, logged, form.Result().Interruption)
	assert.Equal(t, domain.InterruptionDigital, form.typ)
	assert.Empty(t, form.description)
	assert.Equal(t, "1", form.duration)

	// Reopening starts a fresh dialog with the remembered type
	form.Open(4)
	assert.False(t, form.Completed)
	assert.Nil(t, form.Result().Interruption)
	assert.Equal(t, domain.InterruptionDigital, form.typ)
}

func TestInterruptionForm_FailureKeepsDialogOpen(t *testing.T) {
	form := NewInterruptionForm(nil, theme.New(domain.ThemeLight))
	form.Open(4)
	form.description = "Slack ping"
	form.submitting = true

	form.Update(interruptionLoggedMsg{err: errors.New("server unavailable")})

	assert.False(t, form.Completed)
	assert.False(t, form.submitting)
	assert.Equal(t, "Slack ping", form.description)
	assert.Contains(t, form.View(), "Error logging interruption: server unavailable")
}

func TestInterruptionForm_EscCancels(t *testing.T) {
	form := NewInterruptionForm(nil, theme.New(domain.ThemeLight))
	form.Open(1)

	form.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, form.Completed)
	assert.True(t, form.Result().Cancelled)
}

func TestInterruptionErrorText(t *testing.T) {
	validation := fmt.Errorf("%w: description is required", domain.ErrValidation)

	assert.Equal(t, validation.Error(), interruptionErrorText(validation))
	assert.Equal(t, "Error logging interruption: boom", interruptionErrorText(errors.New("boom")))
}
