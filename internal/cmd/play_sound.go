package cmd

import (
	"fmt"

	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// PlaySoundCmd plays the sound of a session event
type PlaySoundCmd struct {
	Event string `arg:"" optional:"" help:"Event to play" enum:"target_reached,session_start,session_end,interruption" default:"target_reached"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	if p.Event == "" {
		p.Event = ports.SoundEventTargetReached
	}
	cli.Container.NotificationService.PlaySoundForEvent(p.Event)
	fmt.Printf("Played %s\n", p.Event)
	return nil
}
