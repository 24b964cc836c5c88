// Package ffmpeg runs the ffmpeg binary with a prepared argument list.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the ffmpeg executable looked up on PATH.
const DefaultBinary = "ffmpeg"

// errorLogLines caps how much captured ffmpeg output is carried in an error.
const errorLogLines = 20

// Runner executes ffmpeg synchronously. It satisfies clip.Transcoder.
type Runner struct {
	Binary string // defaults to DefaultBinary
}

// Transcode runs ffmpeg with the given arguments, passing them through
// verbatim. Combined stdout/stderr is captured so a failure can report what
// ffmpeg actually complained about. A non-zero exit is an error; nothing is
// retried.
func (r *Runner) Transcode(ctx context.Context, args []string) error {
	binary := r.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if log := tailLines(out.String(), errorLogLines); log != "" {
			return fmt.Errorf("ffmpeg failed to process the video: %s", log)
		}
		return fmt.Errorf("failed to execute ffmpeg (is it installed?): %w", err)
	}
	return nil
}

// tailLines returns the last n non-empty lines of s.
func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	var kept []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return strings.Join(kept, "\n")
}
