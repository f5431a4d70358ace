package server

import (
	"bufio"
	"bytes"
	"crypto/md5"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/hyperfocus/hyperfocus/internal/logging"
)

// authorize logs and decides a public key login
func authorize(user string, key ssh.PublicKey, authorizedKeysPath string) bool {
	fingerprint := getKeyFingerprint(key)

	if !isKeyAuthorized(key, authorizedKeysPath) {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", user,
			"fingerprint", fingerprint,
			"key_type", key.Type())
		return false
	}

	logging.Logger.Info("SSH key authenticated",
		"user", user,
		"fingerprint", fingerprint,
		"key_type", key.Type())
	return true
}

// isKeyAuthorized checks if the client's public key is in authorized_keys
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) bool {
	file, err := os.Open(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Failed to open authorized_keys", "error", err, "path", authorizedKeysPath)
		return false
	}
	defer file.Close()

	want := clientKey.Marshal()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		authorizedKey, _, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Skipping unparsable authorized key line", "error", err)
			continue
		}
		if bytes.Equal(want, authorizedKey.Marshal()) {
			return true
		}
	}

	if err := scanner.Err(); err != nil {
		logging.Logger.Error("Error reading authorized_keys", "error", err)
	}
	return false
}

// getKeyFingerprint returns "MD5:xx:xx:..." for the audit log
func getKeyFingerprint(key ssh.PublicKey) string {
	hash := md5.Sum(key.Marshal())
	parts := make([]string, len(hash))
	for i, b := range hash {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return "MD5:" + strings.Join(parts, ":")
}
