package sys

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidDuration is returned for malformed duration tokens.
var ErrInvalidDuration = errors.New("invalid duration token")

var durationUnits = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
}

// ParseDurationToken parses a compact duration token: a non-negative
// integer magnitude followed by a single unit character (s, m, h or d).
// "10m" is ten minutes, "2d" is two days.
func ParseDurationToken(token string) (time.Duration, error) {
	if len(token) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}

	unit, ok := durationUnits[token[len(token)-1]]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit in %q", ErrInvalidDuration, token)
	}

	magnitude, err := strconv.ParseUint(token[:len(token)-1], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad magnitude in %q", ErrInvalidDuration, token)
	}

	return time.Duration(magnitude) * unit, nil
}
