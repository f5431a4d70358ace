//go:build darwin

package sound

import "github.com/hyperfocus/hyperfocus/internal/ports"

// soundsFor picks macOS system sounds played through afplay
func soundsFor(eventType string) []candidate {
	var files []string

	switch eventType {
	case ports.SoundEventTargetReached:
		files = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Hero.aiff"}
	case ports.SoundEventSessionStart:
		files = []string{"/System/Library/Sounds/Submarine.aiff", "/System/Library/Sounds/Purr.aiff"}
	case ports.SoundEventSessionEnd:
		files = []string{"/System/Library/Sounds/Tink.aiff"}
	case ports.SoundEventInterruption:
		files = []string{"/System/Library/Sounds/Pop.aiff", "/System/Library/Sounds/Ping.aiff"}
	default:
		files = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	out := make([]candidate, 0, len(files))
	for _, f := range files {
		out = append(out, candidate{cmd: "afplay", args: []string{f}})
	}
	return out
}
