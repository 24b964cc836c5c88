package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/ytclip/ui"
)

// Theme returns a custom huh theme that matches the console color palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused field styles
	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(ui.BrightPurple).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ui.Pink).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ui.Lavender)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(ui.Pink).
		Bold(true)

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(ui.Pink)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ui.Cyan)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ui.Cyan)

	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(ui.LightLavender)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ui.LightLavender).
		Background(ui.BrightPurple).
		Padding(0, 2).
		Bold(true)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ui.Lavender).
		Padding(0, 2)

	// Blurred field styles mirror focused without the accent border
	t.Blurred.Base = t.Blurred.Base.PaddingLeft(2)

	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(ui.Lavender)

	t.Blurred.Description = lipgloss.NewStyle().
		Foreground(ui.Lavender)

	t.Blurred.TextInput.Text = lipgloss.NewStyle().
		Foreground(ui.Lavender)

	return t
}
