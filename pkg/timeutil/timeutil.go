package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat is returned when a time string is empty or has more
	// than three colon-separated fields.
	ErrInvalidFormat = errors.New("invalid time format")

	// ErrInvalidComponent is the sentinel wrapped by ComponentError.
	ErrInvalidComponent = errors.New("invalid time component")
)

// ComponentError reports which positional component of a time string failed
// to parse as a number.
type ComponentError struct {
	Component string
	Value     string
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Component, e.Value)
}

func (e *ComponentError) Unwrap() error { return ErrInvalidComponent }

// ParseTime parses a time string in HH:MM:SS, MM:SS, or raw seconds format
// into an absolute offset in seconds. Fields may be fractional, and no
// per-field bounds are enforced ("90" seconds or "75:00" are legal and scale
// additively). Negative fields are accepted and propagate into the total.
func ParseTime(timeStr string) (float64, error) {
	if timeStr == "" {
		return 0, fmt.Errorf("%w: empty time string", ErrInvalidFormat)
	}

	parts := strings.Split(timeStr, ":")

	var names []string
	switch len(parts) {
	case 1:
		names = []string{"seconds"}
	case 2:
		names = []string{"minutes", "seconds"}
	case 3:
		names = []string{"hours", "minutes", "seconds"}
	default:
		return 0, fmt.Errorf("%w: expected HH:MM:SS, MM:SS, or seconds, got %q", ErrInvalidFormat, timeStr)
	}

	var total float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, &ComponentError{Component: names[i], Value: part}
		}
		total = total*60 + value
	}

	return total, nil
}

// FormatTime formats seconds as H:MM:SS (e.g. 0:01:30, 1:11:22).
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}
