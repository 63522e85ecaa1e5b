package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDuration is returned when a duration string cannot be parsed.
var ErrMalformedDuration = errors.New("malformed duration")

// ParseDuration converts a clock-formatted duration ("3:45" or "1:02:03",
// most-significant unit first) into total seconds.
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrMalformedDuration)
	}

	total := 0
	for _, part := range strings.Split(s, ":") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
		}
		total = total*60 + n
	}

	return total, nil
}
