// Package ytdlp resolves YouTube page URLs to titles and direct media URLs
// by shelling out to the yt-dlp binary.
package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// DefaultBinary is the yt-dlp executable looked up on PATH.
const DefaultBinary = "yt-dlp"

// ErrNoVideoID is returned when a URL matches none of the known YouTube
// URL shapes.
var ErrNoVideoID = errors.New("could not extract video ID from URL")

// videoIDPattern matches watch, short-link, and embed URLs, capturing the
// 11-character video ID.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`)

// ExtractVideoID pulls the video ID out of a YouTube URL.
func ExtractVideoID(url string) (string, error) {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrNoVideoID, url)
	}
	return m[1], nil
}

// Client invokes yt-dlp. It satisfies clip.Resolver.
type Client struct {
	Binary string // defaults to DefaultBinary
}

func (c *Client) binary() string {
	if c.Binary != "" {
		return c.Binary
	}
	return DefaultBinary
}

// VideoID extracts the video ID from a page URL. Pure; no subprocess.
func (c *Client) VideoID(url string) (string, error) {
	return ExtractVideoID(url)
}

// Title fetches the video title. A yt-dlp failure exit yields an empty title
// with nil error so callers can fall back to a default name; only a failure
// to run the binary at all is an error.
func (c *Client) Title(ctx context.Context, url string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary(), "--get-title", "--no-playlist", url)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("failed to execute yt-dlp (is it installed?): %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Resolve returns a direct media URL for the best mp4 (or overall best)
// format. Failure here is terminal for the download.
func (c *Client) Resolve(ctx context.Context, url string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary(),
		"--no-playlist",
		"-f", "best[ext=mp4]/best",
		"--get-url",
		url,
	)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("failed to extract video URL: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("failed to execute yt-dlp (is it installed?): %w", err)
	}

	direct := strings.TrimSpace(string(out))
	if direct == "" {
		return "", errors.New("yt-dlp returned an empty URL")
	}
	return direct, nil
}
