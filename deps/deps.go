package deps

import (
	"fmt"
	"os/exec"
)

const (
	YtdlpInstallURL  = "https://github.com/yt-dlp/yt-dlp/wiki/Installation"
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckYtdlp checks if yt-dlp is installed and available in PATH
func CheckYtdlp() error {
	_, err := exec.LookPath("yt-dlp")
	if err != nil {
		return &DependencyError{
			Name:       "yt-dlp",
			InstallURL: YtdlpInstallURL,
		}
	}
	return nil
}

// CheckFfmpeg checks if ffmpeg is installed and available in PATH
func CheckFfmpeg() error {
	_, err := exec.LookPath("ffmpeg")
	if err != nil {
		return &DependencyError{
			Name:       "ffmpeg",
			InstallURL: FfmpegInstallURL,
		}
	}
	return nil
}

// CheckAll checks all dependencies and returns a slice of errors for missing ones
func CheckAll() []error {
	var errors []error

	if err := CheckYtdlp(); err != nil {
		errors = append(errors, err)
	}

	if err := CheckFfmpeg(); err != nil {
		errors = append(errors, err)
	}

	return errors
}
