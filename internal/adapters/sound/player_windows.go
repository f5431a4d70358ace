//go:build windows

package sound

import "github.com/hyperfocus/hyperfocus/internal/ports"

// soundsFor picks Windows system sounds played through PowerShell
func soundsFor(eventType string) []candidate {
	var sounds []string

	switch eventType {
	case ports.SoundEventTargetReached:
		sounds = []string{"Asterisk", "Beep"}
	case ports.SoundEventSessionStart:
		sounds = []string{"Question", "Beep"}
	case ports.SoundEventInterruption:
		sounds = []string{"Exclamation", "Beep"}
	default:
		sounds = []string{"Beep"}
	}

	out := make([]candidate, 0, len(sounds))
	for _, s := range sounds {
		out = append(out, candidate{cmd: "powershell", args: []string{"-c", "[System.Media.SystemSounds]::" + s + ".Play()"}})
	}
	return out
}
