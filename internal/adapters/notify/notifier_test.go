package notify

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledIsNoop(t *testing.T) {
	n := New(false)

	assert.IsType(t, &NoopNotifier{}, n)
	assert.NoError(t, n.Notify("Target reached", "25 minutes of focus"))
}

func TestNew_EnabledUsesDBus(t *testing.T) {
	n := New(true)

	assert.IsType(t, &DBusNotifier{}, n)
}

func TestDBusNotifier_NoBus(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path="+filepath.Join(t.TempDir(), "missing.sock"))

	err := NewDBusNotifier("").Notify("Target reached", "body")

	assert.ErrorContains(t, err, "failed to connect to session bus")
}
