package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/ytclip/deps"
)

var Version = "1.0.0"

var (
	outputFlag string
	speedFlag  float64
)

var rootCmd = &cobra.Command{
	Use:   "ytclip <url> <start-time> <end-time>",
	Short: "Download specific clips from YouTube videos",
	Long: `ytclip downloads a time-bounded clip from a YouTube video without
fetching the whole file, by resolving a direct stream URL with yt-dlp and
cutting it with ffmpeg.

Times can be given as seconds (90), MM:SS (1:30), or HH:MM:SS (1:30:45).
Playback speed can be adjusted between 0.5x and 4.0x; audio pitch is
corrected with chained tempo filters.

Run with no arguments for an interactive prompt.`,
	Args: cobra.MaximumNArgs(3),
	RunE: runClip,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ytclip version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (yt-dlp, ffmpeg) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		// Check yt-dlp
		if err := deps.CheckYtdlp(); err != nil {
			fmt.Println("✗ yt-dlp: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.YtdlpInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ yt-dlp: OK")
		}

		// Check ffmpeg
		if err := deps.CheckFfmpeg(); err != nil {
			fmt.Println("✗ ffmpeg: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ ffmpeg: OK")
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use ytclip.")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Custom output filename")
	rootCmd.Flags().Float64VarP(&speedFlag, "speed", "s", 1.0, "Playback speed (0.5 to 4.0)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
