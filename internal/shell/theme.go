package shell

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	usedColor  = lipgloss.Color("#FF4B4B")
	freeColor  = lipgloss.Color("#04B575")
	titleColor = lipgloss.Color("#7D56F4")
	errorColor = lipgloss.Color("#FFA500")
	mutedColor = lipgloss.Color("#666666")
)

// Theme holds the styles applied to shell output.
type Theme struct {
	Used  lipgloss.Style
	Free  lipgloss.Style
	Title lipgloss.Style
	Error lipgloss.Style
	Muted lipgloss.Style
}

// PlainTheme renders text unchanged.
func PlainTheme() Theme {
	return Theme{
		Used:  lipgloss.NewStyle(),
		Free:  lipgloss.NewStyle(),
		Title: lipgloss.NewStyle(),
		Error: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
	}
}

// ColorTheme colors used blocks red and free blocks green. lipgloss drops the
// colors itself when stdout is not a terminal.
func ColorTheme() Theme {
	return Theme{
		Used:  lipgloss.NewStyle().Foreground(usedColor),
		Free:  lipgloss.NewStyle().Foreground(freeColor),
		Title: lipgloss.NewStyle().Bold(true).Foreground(titleColor),
		Error: lipgloss.NewStyle().Foreground(errorColor),
		Muted: lipgloss.NewStyle().Foreground(mutedColor),
	}
}
