package clip

import (
	"fmt"
	"strings"
)

// SanitizeTitle makes a fetched video title safe for use as a filename:
// filesystem-hostile characters become underscores and whitespace runs
// collapse to single spaces.
func SanitizeTitle(title string) string {
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		default:
			return r
		}
	}, title)

	return strings.Join(strings.Fields(replaced), " ")
}

// OutputFilename derives the clip filename from the sanitized title and the
// raw time strings as the user typed them (colons become dashes). A non-unity
// speed is embedded so differently-paced clips of the same range don't
// collide.
func OutputFilename(title, startRaw, endRaw string, speed float64) string {
	start := strings.ReplaceAll(startRaw, ":", "-")
	end := strings.ReplaceAll(endRaw, ":", "-")

	if !IsUnitySpeed(speed) {
		return fmt.Sprintf("%s_clip_%s-%s_%sx.mp4", title, start, end, formatSeconds(speed))
	}
	return fmt.Sprintf("%s_clip_%s_%s.mp4", title, start, end)
}
