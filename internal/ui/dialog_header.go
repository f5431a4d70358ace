package ui

import (
	"fmt"

	"github.com/hyperfocus/hyperfocus/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo is used until SetVersionInfo is called
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Stay in the zone",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the version info shown in headers (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// GetVersionInfo returns the version info currently in use
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// renderHeader renders the app name, the build info in dev mode, the
// tagline and, when given, a subtitle such as a dialog title.
func renderHeader(styles *theme.Styles, devMode bool, subtitle string) string {
	line := styles.AppName.Render("HyperFocus")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += styles.Version.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	result := line + "\n" + styles.Tagline.Render(versionInfo.Tagline)
	if subtitle != "" {
		result += "\n\n" + styles.Subtitle.Render(subtitle)
	}
	return result + "\n"
}
