// Package ui provides Lipgloss styles for console output using the Ciapre
// colour palette.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - Ciapre (warm, earthy) theme from Gogh
const (
	// Cyan is used for informational messages (Ciapre ANSI 12 bright blue)
	Cyan = lipgloss.Color("#3097C6")
	// Amber is used for time-range messages (Ciapre derived)
	Amber = lipgloss.Color("#CC8B3F")
	// Pink is used for speed callouts (Ciapre ANSI 13 bright magenta)
	Pink = lipgloss.Color("#D33061")
	// Green is used for success messages (Ciapre ANSI 2)
	Green = lipgloss.Color("#A6A75D")
	// Red is used for warnings and errors (Ciapre ANSI 1)
	Red = lipgloss.Color("#AC3835")
	// Lavender is a secondary text colour (Ciapre foreground)
	Lavender = lipgloss.Color("#AEA47A")
	// LightLavender is the primary text colour (Ciapre ANSI 14 cream)
	LightLavender = lipgloss.Color("#F3DBB2")
	// BrightPurple is used for focus states in forms (Ciapre ANSI 5 magenta)
	BrightPurple = lipgloss.Color("#724D7C")
)

var (
	infoStyle     = lipgloss.NewStyle().Foreground(Cyan)
	timeStyle     = lipgloss.NewStyle().Foreground(Amber)
	speedStyle    = lipgloss.NewStyle().Foreground(Pink)
	successStyle  = lipgloss.NewStyle().Foreground(Green).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(Red)
	emphasisStyle = lipgloss.NewStyle().Foreground(LightLavender).Bold(true)
)

// Pre-rendered status tags prefixed to console lines.
var (
	InfoTag    = infoStyle.Render("[INFO]")
	TimeTag    = timeStyle.Render("[TIME]")
	SpeedTag   = speedStyle.Render("[SPEED]")
	SuccessTag = successStyle.Render("[SUCCESS]")
	WarnTag    = warnStyle.Render("[WARN]")
)

// Emphasis highlights a value (such as an output filename) in a status line.
func Emphasis(s string) string {
	return emphasisStyle.Render(s)
}
