package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

const (
	notificationsInterface = "org.freedesktop.Notifications"
	notificationsPath      = "/org/freedesktop/Notifications"
	appName                = "HyperFocus"
	expireTimeoutMillis    = int32(10000)
)

// DBusNotifier sends desktop notifications over the session bus
// (org.freedesktop.Notifications). It only works where a notification
// daemon is listening, which in practice means Linux desktops.
type DBusNotifier struct {
	icon string
}

// NoopNotifier discards notifications
type NoopNotifier struct{}

var (
	_ ports.DesktopNotifier = (*DBusNotifier)(nil)
	_ ports.DesktopNotifier = (*NoopNotifier)(nil)
)

// NewDBusNotifier creates a notifier using the given freedesktop icon name
func NewDBusNotifier(icon string) *DBusNotifier {
	if icon == "" {
		icon = "appointment-soon"
	}
	return &DBusNotifier{icon: icon}
}

// New returns a D-Bus notifier when enabled, or a no-op one
func New(enabled bool) ports.DesktopNotifier {
	if !enabled {
		return &NoopNotifier{}
	}
	return NewDBusNotifier("")
}

// Notify shows a notification. A fresh connection is used per call since
// notifications are rare.
func (n *DBusNotifier) Notify(summary, body string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(notificationsInterface, dbus.ObjectPath(notificationsPath))
	call := obj.Call(notificationsInterface+".Notify", 0,
		appName,
		uint32(0), // replaces_id
		n.icon,
		summary,
		body,
		[]string{}, // actions
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(1)),
		},
		expireTimeoutMillis,
	)
	if call.Err != nil {
		return fmt.Errorf("failed to send notification: %w", call.Err)
	}

	logging.Logger.Debug("Desktop notification sent", "summary", summary)
	return nil
}

// Notify implements ports.DesktopNotifier
func (NoopNotifier) Notify(summary, body string) error {
	return nil
}
