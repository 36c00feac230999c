package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// minutesPerDay bounds every wall-clock value the engine handles.
const minutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" wall-clock string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes from midnight as a zero-padded "HH:MM" string.
// It is the inverse of ParseClock for every valid input.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddClock advances an "HH:MM" string by n minutes. A result that leaves the
// day is rejected instead of wrapping around midnight.
func AddClock(s string, n int) (string, error) {
	minutes, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	sum := minutes + n
	if sum < 0 || sum >= minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min is outside the day", ErrInvalidTimeFormat, s, n)
	}
	return FormatClock(sum), nil
}
