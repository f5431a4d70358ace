package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// AuthService logs the user in and out and keeps the token on disk
type AuthService struct {
	api         ports.AuthAPI
	credentials ports.CredentialStore
}

// NewAuthService creates a new AuthService
func NewAuthService(api ports.AuthAPI, credentials ports.CredentialStore) *AuthService {
	return &AuthService{api: api, credentials: credentials}
}

// Login exchanges email and password for a token and saves it
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Credential, error) {
	email = strings.TrimSpace(email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	logging.Logger.Info("Logging in", "email", email)

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		logging.Logger.Error("Login failed", "email", email, "error", err)
		return nil, err
	}

	cred := domain.Credential{Email: email, Token: *token}
	if err := s.credentials.SaveCredential(ctx, cred); err != nil {
		return nil, fmt.Errorf("failed to save credential: %w", err)
	}

	return &cred, nil
}

// Register creates the account and logs straight into it
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Name = strings.TrimSpace(reg.Name)
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	logging.Logger.Info("Registering user", "email", reg.Email)

	user, err := s.api.Register(ctx, reg)
	if err != nil {
		logging.Logger.Error("Registration failed", "email", reg.Email, "error", err)
		return nil, err
	}

	if _, err := s.Login(ctx, reg.Email, reg.Password); err != nil {
		return user, fmt.Errorf("account created but login failed: %w", err)
	}

	return user, nil
}

// Logout forgets the saved token
func (s *AuthService) Logout(ctx context.Context) error {
	logging.Logger.Info("Logging out")
	return s.credentials.ClearCredential(ctx)
}

// WhoAmI returns the account behind the current token
func (s *AuthService) WhoAmI(ctx context.Context) (*domain.User, error) {
	user, err := s.api.Me(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %w", domain.ErrNotLoggedIn, err)
		}
		return nil, err
	}
	return user, nil
}

// Credential returns the saved credential, or domain.ErrNotLoggedIn
func (s *AuthService) Credential(ctx context.Context) (*domain.Credential, error) {
	return s.credentials.GetCredential(ctx)
}
