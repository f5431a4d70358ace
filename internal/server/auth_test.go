package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newTestKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newTestKey(t)
	other := newTestKey(t)

	path := writeAuthorizedKeys(t,
		"# team keys",
		"",
		"not a key",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed)))+" me@laptop",
	)

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	key := newTestKey(t)
	assert.False(t, isKeyAuthorized(key, filepath.Join(t.TempDir(), "missing")))
}

func TestAuthorize(t *testing.T) {
	allowed := newTestKey(t)
	path := writeAuthorizedKeys(t, string(gossh.MarshalAuthorizedKey(allowed)))

	assert.True(t, authorize("alice", allowed, path))
	assert.False(t, authorize("mallory", newTestKey(t), path))
}

func TestGetKeyFingerprint(t *testing.T) {
	key := newTestKey(t)
	fp := getKeyFingerprint(key)

	assert.True(t, strings.HasPrefix(fp, "MD5:"))
	// 16 bytes as hex pairs joined by colons
	assert.Len(t, strings.TrimPrefix(fp, "MD5:"), 16*3-1)
	assert.Equal(t, fp, getKeyFingerprint(key))
}
