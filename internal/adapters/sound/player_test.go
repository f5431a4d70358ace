package sound

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperfocus/hyperfocus/internal/ports"
)

func TestPlayer_DisabledIsSilent(t *testing.T) {
	player := NewPlayer(false)

	assert.NoError(t, player.PlaySound())
	assert.NoError(t, player.PlaySoundForEvent(ports.SoundEventSessionStart))
}

func TestSoundsFor_CoversEvents(t *testing.T) {
	switch runtime.GOOS {
	case "darwin", "linux", "windows":
	default:
		t.Skip("no platform sounds on " + runtime.GOOS)
	}

	events := []string{
		ports.SoundEventInterruption,
		ports.SoundEventSessionEnd,
		ports.SoundEventSessionStart,
		ports.SoundEventTargetReached,
		"something-else",
	}
	for _, event := range events {
		t.Run(event, func(t *testing.T) {
			candidates := soundsFor(event)
			assert.NotEmpty(t, candidates)
			for _, c := range candidates {
				assert.NotEmpty(t, c.cmd)
			}
		})
	}
}

func TestPlayFirst_FallsBackToBell(t *testing.T) {
	err := playFirst([]candidate{{cmd: "hyperfocus-no-such-player"}})

	assert.NoError(t, err)
}
