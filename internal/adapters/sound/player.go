package sound

import (
	"fmt"
	"os/exec"

	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// Player implements ports.SoundPlayer with the platform's stock sounds
type Player struct {
	enabled bool
}

var _ ports.SoundPlayer = (*Player)(nil)

// candidate is one command that may produce a sound
type candidate struct {
	args []string
	cmd  string
}

// NewPlayer creates a sound player. A disabled player is silent.
func NewPlayer(enabled bool) *Player {
	return &Player{enabled: enabled}
}

// PlaySound plays the target-reached sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(ports.SoundEventTargetReached)
}

// PlaySoundForEvent plays a sound for the event. Platform-specific choices
// live in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	if !p.enabled {
		return nil
	}
	logging.Logger.Debug("Playing sound", "event", eventType)
	return playFirst(soundsFor(eventType))
}

// playFirst runs candidates in order until one succeeds, then falls back to
// the terminal bell
func playFirst(candidates []candidate) error {
	for _, c := range candidates {
		if err := exec.Command(c.cmd, c.args...).Run(); err == nil {
			return nil
		}
	}
	return terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
