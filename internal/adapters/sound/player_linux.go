//go:build linux

package sound

import "github.com/hyperfocus/hyperfocus/internal/ports"

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// soundsFor picks freedesktop sounds, trying PulseAudio (paplay) before ALSA (aplay)
func soundsFor(eventType string) []candidate {
	var names []string

	switch eventType {
	case ports.SoundEventTargetReached:
		names = []string{"complete", "bell"}
	case ports.SoundEventSessionStart:
		names = []string{"service-login"}
	case ports.SoundEventSessionEnd:
		names = []string{"service-logout", "complete"}
	case ports.SoundEventInterruption:
		names = []string{"message"}
	default:
		names = []string{"bell"}
	}

	out := make([]candidate, 0, len(names)*2)
	for _, name := range names {
		out = append(out,
			candidate{cmd: "paplay", args: []string{freedesktopSounds + name + ".oga"}},
			candidate{cmd: "aplay", args: []string{freedesktopSounds + name + ".wav"}},
		)
	}
	return out
}
