package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// MinPasswordLength matches the server's registration rule
const MinPasswordLength = 8

// User is the authenticated account
type User struct {
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Email     string    `json:"email" yaml:"email"`
	ID        int       `json:"id" yaml:"id"`
	IsActive  bool      `json:"is_active" yaml:"is_active"`
	Name      string    `json:"name" yaml:"name"`
}

// Token is a bearer credential issued by the server
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Credential is a token persisted on disk along with who it belongs to
type Credential struct {
	Email string
	Token Token
}

// Registration is the sign-up payload
type Registration struct {
	Email    string
	Name     string
	Password string
}

// Validate checks registration fields before contacting the server
func (r Registration) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	return nil
}

// ValidateEmail rejects obviously malformed addresses
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrValidation, email)
	}
	return nil
}
