package ports

import (
	"context"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// TargetDurationStore keeps the client-only target duration per session
type TargetDurationStore interface {
	ClearTargetDuration(ctx context.Context, sessionID int) error
	GetTargetDuration(ctx context.Context, sessionID int) (*int, error)
	SetTargetDuration(ctx context.Context, sessionID int, minutes int) error
}

// CredentialStore persists the bearer token between runs
type CredentialStore interface {
	ClearCredential(ctx context.Context) error
	GetCredential(ctx context.Context) (*domain.Credential, error)
	SaveCredential(ctx context.Context, cred domain.Credential) error
}

// PreferenceStore keeps small user preferences as key/value pairs
type PreferenceStore interface {
	GetPreference(ctx context.Context, key string) (string, bool, error)
	SetPreference(ctx context.Context, key, value string) error
}

// LocalRepository is the composite interface
type LocalRepository interface {
	CredentialStore
	PreferenceStore
	TargetDurationStore
	Close() error
}
