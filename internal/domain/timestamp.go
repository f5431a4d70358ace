package domain

import (
	"fmt"
	"strings"
	"time"
)

// ParseServerTime converts a timestamp produced by the API into an absolute
// instant. The server stores naive UTC datetimes, so a value without a zone
// designator is read as UTC. Values carrying Z or a numeric offset are
// honoured as-is.
func ParseServerTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	// Python's str(datetime) separates date and time with a space
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}

	if !hasZoneDesignator(s) {
		s += "Z"
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return t.UTC(), nil
}

// FormatServerTime renders an instant the way the API accepts it on input.
func FormatServerTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// hasZoneDesignator reports whether the time part ends in Z or +hh:mm/-hh:mm.
func hasZoneDesignator(s string) bool {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		return true
	}
	idx := strings.IndexByte(s, 'T')
	if idx < 0 {
		return false
	}
	clock := s[idx+1:]
	return strings.ContainsAny(clock, "+-")
}
