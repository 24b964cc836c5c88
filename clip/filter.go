package clip

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// encodeArgs is the fixed encoding block appended to every transcode
// invocation: QuickTime-compatible H.264/AAC in a faststart MP4, with the
// overwrite flag so reruns replace stale output.
var encodeArgs = []string{
	"-c:v", "libx264",
	"-c:a", "aac",
	"-pix_fmt", "yuv420p",
	"-movflags", "faststart",
	"-preset", "fast",
	"-crf", "23",
	"-y",
}

// BuildArgs assembles the ordered ffmpeg argument list for one clip: seek to
// start, read from source, cut to duration, apply rate filters when the speed
// is not unity, then the fixed encoding block and the output path. Pure and
// deterministic; source is an opaque locator supplied by the resolver.
func BuildArgs(source string, start, duration, speed float64, output string) []string {
	args := []string{
		"-ss", formatSeconds(start),
		"-i", source,
		"-t", formatSeconds(duration),
	}

	if !IsUnitySpeed(speed) {
		args = append(args,
			"-filter:v", fmt.Sprintf("setpts=%.2f*PTS", 1.0/speed),
			"-filter:a", atempoChain(speed),
		)
	}

	args = append(args, encodeArgs...)
	return append(args, output)
}

// atempoChain builds the audio tempo filter value. ffmpeg's atempo filter
// accepts at most 2.0 per stage, so speeds above 2x are decomposed into a
// comma-joined chain of stages whose product equals the requested speed.
func atempoChain(speed float64) string {
	if speed <= 2.0 {
		return fmt.Sprintf("atempo=%.2f", math.Min(speed, 2.0))
	}

	var stages []string
	tempo := speed
	for tempo > 2.0 {
		stages = append(stages, "atempo=2.0")
		tempo /= 2.0
	}
	if tempo > 1.0 {
		stages = append(stages, fmt.Sprintf("atempo=%.2f", tempo))
	}
	return strings.Join(stages, ",")
}

// formatSeconds renders a second count with only as many digits as needed,
// so whole seconds stay integral ("90", not "90.000000").
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
