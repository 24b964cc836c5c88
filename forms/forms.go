package forms

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/user/ytclip/clip"
	"github.com/user/ytclip/pkg/timeutil"
	"github.com/user/ytclip/ytdlp"
)

// ClipFormResult holds the data returned by a completed clip form.
type ClipFormResult struct {
	URL    string
	Start  string
	End    string
	Output string
	Speed  string
}

// SpeedFactor parses the speed field. The form validates the value, so this
// only fails if called on an unsubmitted result.
func (r *ClipFormResult) SpeedFactor() (float64, error) {
	return strconv.ParseFloat(r.Speed, 64)
}

// NewClipForm creates a huh form for entering a clip request interactively.
// The result pointer is bound to the form fields and populated on submit.
func NewClipForm(result *ClipFormResult) *huh.Form {
	if result.Speed == "" {
		result.Speed = "1.0"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Download a clip"),

			huh.NewInput().
				Title("YouTube URL").
				Description("Required").
				Value(&result.URL).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("URL is required")
					}
					if _, err := ytdlp.ExtractVideoID(s); err != nil {
						return fmt.Errorf("not a recognized YouTube URL")
					}
					return nil
				}),

			huh.NewInput().
				Title("Start time").
				Description("e.g. 1:30, 90, 1:30:45").
				Value(&result.Start).
				Validate(validateTime),

			huh.NewInput().
				Title("End time").
				Description("e.g. 2:45, 165, 2:45:30").
				Value(&result.End).
				Validate(validateTime),

			huh.NewInput().
				Title("Output filename").
				Description("Optional; derived from the video title when empty").
				Value(&result.Output),

			huh.NewInput().
				Title("Speed").
				Description("0.5 to 4.0").
				Value(&result.Speed).
				Validate(func(s string) error {
					speed, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("speed must be a number")
					}
					return clip.ValidateSpeed(speed)
				}),
		),
	).WithTheme(Theme())

	return form
}

// NewOverwriteConfirm creates a confirm prompt for an existing output file.
// The bound bool reports whether the user chose to overwrite.
func NewOverwriteConfirm(path string, overwrite *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
				Affirmative("Overwrite").
				Negative("Cancel").
				Value(overwrite),
		),
	).WithTheme(Theme())
}

func validateTime(s string) error {
	if _, err := timeutil.ParseTime(s); err != nil {
		return err
	}
	return nil
}
