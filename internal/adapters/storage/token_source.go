package storage

import (
	"context"
	"errors"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// CredentialTokenSource serves the saved bearer token, unless an explicit
// token (HYPERFOCUS_TOKEN or --token) overrides it
type CredentialTokenSource struct {
	override string
	store    ports.CredentialStore
}

var _ ports.TokenSource = (*CredentialTokenSource)(nil)

// NewCredentialTokenSource creates a token source backed by the credential store
func NewCredentialTokenSource(store ports.CredentialStore, override string) *CredentialTokenSource {
	return &CredentialTokenSource{override: override, store: store}
}

// Token returns the bearer token, or "" when nobody is logged in
func (s *CredentialTokenSource) Token(ctx context.Context) (string, error) {
	if s.override != "" {
		return s.override, nil
	}
	cred, err := s.store.GetCredential(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			return "", nil
		}
		return "", err
	}
	return cred.Token.AccessToken, nil
}
