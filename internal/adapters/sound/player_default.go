//go:build !darwin && !linux && !windows

package sound

// soundsFor has nothing to offer on unsupported platforms; the bell is used
func soundsFor(eventType string) []candidate {
	return nil
}
