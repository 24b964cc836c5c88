// Package clip plans and runs time-bounded clip downloads: it turns parsed
// time offsets and a speed factor into the exact ffmpeg argument list, and
// orchestrates the external resolver and transcoder around it.
package clip

import (
	"errors"
	"math"
)

var (
	// ErrNonPositiveDuration is returned when a clip's end time is not
	// strictly after its start time.
	ErrNonPositiveDuration = errors.New("end time must be after start time")

	// ErrSpeedOutOfRange is returned when a speed factor falls outside
	// [MinSpeed, MaxSpeed].
	ErrSpeedOutOfRange = errors.New("speed must be between 0.5 and 4.0")
)

// Speed bounds accepted at the command line.
const (
	MinSpeed = 0.5
	MaxSpeed = 4.0
)

// speedEpsilon is the band around 1.0 within which a speed factor is treated
// as exactly unity, so floating-point jitter never produces no-op filters.
const speedEpsilon = 0.01

// Range is a clip window in seconds from the start of the video.
// Construct via NewRange; End is always strictly after Start.
type Range struct {
	Start float64
	End   float64
}

// NewRange validates that end is strictly after start.
func NewRange(start, end float64) (Range, error) {
	if end <= start {
		return Range{}, ErrNonPositiveDuration
	}
	return Range{Start: start, End: end}, nil
}

// Duration returns the clip length in seconds. Always positive.
func (r Range) Duration() float64 {
	return r.End - r.Start
}

// ValidateSpeed checks a speed factor against the accepted bounds. This runs
// at the CLI boundary; BuildArgs assumes the range holds.
func ValidateSpeed(speed float64) error {
	if speed < MinSpeed || speed > MaxSpeed {
		return ErrSpeedOutOfRange
	}
	return nil
}

// IsUnitySpeed reports whether speed is close enough to 1.0 that no rate
// filters are needed.
func IsUnitySpeed(speed float64) bool {
	return math.Abs(speed-1.0) <= speedEpsilon
}
