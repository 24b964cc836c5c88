package clip

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/user/ytclip/pkg/timeutil"
	"github.com/user/ytclip/ui"
)

// DefaultTitle is used when the video title cannot be fetched. Title lookup
// is the one tolerated partial failure: a clip without a nice name beats no
// clip at all.
const DefaultTitle = "video"

// Resolver looks up metadata and a direct media locator for a video page URL.
type Resolver interface {
	// VideoID extracts the platform video ID from a page URL.
	VideoID(url string) (string, error)
	// Title fetches the video title. An empty title with nil error means
	// the tool ran but produced nothing; callers fall back to DefaultTitle.
	Title(ctx context.Context, url string) (string, error)
	// Resolve returns a direct media URL for the transcoder to read.
	Resolve(ctx context.Context, url string) (string, error)
}

// Transcoder runs the external transcode process with the given argument
// list, exactly as produced by BuildArgs.
type Transcoder interface {
	Transcode(ctx context.Context, args []string) error
}

// History records download attempts. Recording failures must never abort a
// download; the Downloader reports them and carries on.
type History interface {
	Started(url, videoID, title, output string, start, end, speed float64) (int64, error)
	Completed(id, filesize int64) error
	Failed(id int64, message string) error
}

// Request describes one clip download as received from the CLI. Start and
// End carry the raw time strings as typed; parsing happens inside Download
// so the filename can embed the user's own notation.
type Request struct {
	URL    string
	Start  string
	End    string
	Output string // optional override; derived from the title when empty
	Speed  float64
}

// Result reports what a completed download produced.
type Result struct {
	VideoID    string
	Title      string
	OutputFile string
	Range      Range
	Speed      float64
}

// Downloader wires the pure clip planning to the external tools. The
// resolver always runs to completion before the transcoder starts; the two
// are never concurrent for a single request.
type Downloader struct {
	Resolver   Resolver
	Transcoder Transcoder
	History    History   // optional
	Out        io.Writer // status output; defaults to os.Stdout
}

func (d *Downloader) out() io.Writer {
	if d.Out != nil {
		return d.Out
	}
	return os.Stdout
}

// Download runs the full pipeline for one request: parse and validate the
// time range, identify the video, fetch its title, derive the output name,
// resolve the direct URL, and hand the built argument list to the
// transcoder. Errors are terminal; nothing is retried.
func (d *Downloader) Download(ctx context.Context, req Request) (*Result, error) {
	start, err := timeutil.ParseTime(req.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := timeutil.ParseTime(req.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}
	rng, err := NewRange(start, end)
	if err != nil {
		return nil, err
	}

	videoID, err := d.Resolver.VideoID(req.URL)
	if err != nil {
		return nil, err
	}

	w := d.out()
	fmt.Fprintf(w, "%s Video ID: %s\n", ui.InfoTag, videoID)
	fmt.Fprintf(w, "%s Clipping from %s to %s (duration: %.1fs)\n",
		ui.TimeTag, req.Start, req.End, rng.Duration())
	if !IsUnitySpeed(req.Speed) {
		fmt.Fprintf(w, "%s Speed: %.1fx\n", ui.SpeedTag, req.Speed)
	}

	fmt.Fprintf(w, "%s Fetching video title...\n", ui.InfoTag)
	title, err := d.Resolver.Title(ctx, req.URL)
	if err != nil || title == "" {
		title = DefaultTitle
	}
	title = SanitizeTitle(title)

	output := req.Output
	if output == "" {
		output = OutputFilename(title, req.Start, req.End, req.Speed)
	}

	historyID := d.recordStarted(req, videoID, title, output, rng)

	fmt.Fprintf(w, "%s Streaming clip...\n", ui.InfoTag)
	source, err := d.Resolver.Resolve(ctx, req.URL)
	if err != nil {
		d.recordFailed(historyID, err)
		return nil, fmt.Errorf("resolve video URL: %w", err)
	}

	args := BuildArgs(source, rng.Start, rng.Duration(), req.Speed, output)
	if err := d.Transcoder.Transcode(ctx, args); err != nil {
		d.recordFailed(historyID, err)
		return nil, err
	}

	d.recordCompleted(historyID, output)

	fmt.Fprintf(w, "%s Clip saved as: %s\n", ui.SuccessTag, ui.Emphasis(output))

	return &Result{
		VideoID:    videoID,
		Title:      title,
		OutputFile: output,
		Range:      rng,
		Speed:      req.Speed,
	}, nil
}

// recordStarted inserts a pending history row. Returns 0 when history is
// disabled or the insert failed; the other record methods treat 0 as "skip".
func (d *Downloader) recordStarted(req Request, videoID, title, output string, rng Range) int64 {
	if d.History == nil {
		return 0
	}
	id, err := d.History.Started(req.URL, videoID, title, output, rng.Start, rng.End, req.Speed)
	if err != nil {
		fmt.Fprintf(d.out(), "%s Could not record download history: %v\n", ui.WarnTag, err)
		return 0
	}
	return id
}

func (d *Downloader) recordFailed(id int64, cause error) {
	if d.History == nil || id == 0 {
		return
	}
	if err := d.History.Failed(id, cause.Error()); err != nil {
		fmt.Fprintf(d.out(), "%s Could not update download history: %v\n", ui.WarnTag, err)
	}
}

func (d *Downloader) recordCompleted(id int64, output string) {
	if d.History == nil || id == 0 {
		return
	}
	var size int64
	if info, err := os.Stat(output); err == nil {
		size = info.Size()
	}
	if err := d.History.Completed(id, size); err != nil {
		fmt.Fprintf(d.out(), "%s Could not update download history: %v\n", ui.WarnTag, err)
	}
}
