package ports

// DesktopNotifier shows a notification outside the terminal
type DesktopNotifier interface {
	Notify(summary, body string) error
}
