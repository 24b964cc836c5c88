package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/user/ytclip/clip"
	"github.com/user/ytclip/db"
	"github.com/user/ytclip/ffmpeg"
	"github.com/user/ytclip/forms"
	"github.com/user/ytclip/ui"
	"github.com/user/ytclip/ytdlp"
)

// runClip handles the root invocation: three positional arguments run a
// download directly, zero arguments launch the interactive form.
func runClip(cmd *cobra.Command, args []string) error {
	req := clip.Request{
		Output: outputFlag,
		Speed:  speedFlag,
	}

	switch len(args) {
	case 3:
		req.URL, req.Start, req.End = args[0], args[1], args[2]
	case 0:
		result := forms.ClipFormResult{
			Output: outputFlag,
			Speed:  strconv.FormatFloat(speedFlag, 'f', -1, 64),
		}
		if err := forms.NewClipForm(&result).Run(); err != nil {
			return err
		}
		req.URL, req.Start, req.End, req.Output = result.URL, result.Start, result.End, result.Output
		speed, err := result.SpeedFactor()
		if err != nil {
			return err
		}
		req.Speed = speed
	default:
		return fmt.Errorf("expected <url> <start-time> <end-time>, got %d argument(s)", len(args))
	}

	// Validate speed before anything else runs
	if err := clip.ValidateSpeed(req.Speed); err != nil {
		return fmt.Errorf("%w (got %.2f)", err, req.Speed)
	}

	// An explicit output name may clobber an existing file; confirm first.
	// Derived names embed the time range and speed, so collisions there are
	// deliberate reruns.
	if req.Output != "" {
		if _, err := os.Stat(req.Output); err == nil {
			var overwrite bool
			if err := forms.NewOverwriteConfirm(req.Output, &overwrite).Run(); err != nil {
				return err
			}
			if !overwrite {
				fmt.Println("Aborted.")
				return nil
			}
		}
	}

	downloader := &clip.Downloader{
		Resolver:   &ytdlp.Client{},
		Transcoder: &ffmpeg.Runner{},
		History:    openHistory(),
	}

	_, err := downloader.Download(cmd.Context(), req)
	return err
}

// openHistory opens the history database, returning nil (history disabled)
// if it cannot be opened. A broken history store never blocks a download.
func openHistory() clip.History {
	database, err := db.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s Download history unavailable: %v\n", ui.WarnTag, err)
		return nil
	}
	return &db.Recorder{DB: database}
}
