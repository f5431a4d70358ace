package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestTargetDuration_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	got, err := repo.GetTargetDuration(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.SetTargetDuration(ctx, 42, 25))
	got, err = repo.GetTargetDuration(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 25, *got)

	// Overwrite keeps a single row per session
	require.NoError(t, repo.SetTargetDuration(ctx, 42, 50))
	got, err = repo.GetTargetDuration(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 50, *got)

	require.NoError(t, repo.ClearTargetDuration(ctx, 42))
	got, err = repo.GetTargetDuration(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, repo.ClearTargetDuration(ctx, 42))
}

func TestTargetDuration_IsolatedPerSession(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetTargetDuration(ctx, 1, 15))
	require.NoError(t, repo.SetTargetDuration(ctx, 2, 90))

	first, err := repo.GetTargetDuration(ctx, 1)
	require.NoError(t, err)
	second, err := repo.GetTargetDuration(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 15, *first)
	assert.Equal(t, 90, *second)
}

func TestTargetDuration_RejectsNonPositive(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.SetTargetDuration(context.Background(), 1, 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTargetDuration_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.SetTargetDuration(ctx, 7, 25))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetTargetDuration(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 25, *got)
}

func TestCredential_Lifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.GetCredential(ctx)
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)

	cred := domain.Credential{Email: "ada@example.com", Token: domain.Token{AccessToken: "abc"}}
	require.NoError(t, repo.SaveCredential(ctx, cred))

	got, err := repo.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "abc", got.Token.AccessToken)
	assert.Equal(t, "bearer", got.Token.TokenType)

	require.NoError(t, repo.SaveCredential(ctx, domain.Credential{Email: "bob@example.com", Token: domain.Token{AccessToken: "xyz", TokenType: "bearer"}}))
	got, err = repo.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)

	require.NoError(t, repo.ClearCredential(ctx))
	_, err = repo.GetCredential(ctx)
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestCredential_RejectsEmptyToken(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.SaveCredential(context.Background(), domain.Credential{Email: "ada@example.com"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPreferences(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, found, err := repo.GetPreference(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetPreference(ctx, "theme", "dark"))
	require.NoError(t, repo.SetPreference(ctx, "theme", "light"))

	value, found, err := repo.GetPreference(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", value)
}

func TestCredentialTokenSource(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	source := NewCredentialTokenSource(repo, "")
	token, err := source.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, repo.SaveCredential(ctx, domain.Credential{Email: "ada@example.com", Token: domain.Token{AccessToken: "saved"}}))
	token, err = source.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "saved", token)

	override := NewCredentialTokenSource(repo, "from-env")
	token, err = override.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}
