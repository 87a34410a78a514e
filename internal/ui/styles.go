package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/emoti/internal/config"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles, selection marker
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth  = 40 // Minimum supported terminal width
	MinTerminalHeight = 8  // Minimum list height
	MaxContentWidth   = 100
)

// Shared styles
var (
	// AppStyle pads the terminal picker
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	// TitleStyle is for the picker title bar
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	// SelectedItemStyle is for the selection marker
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// ErrorLabelStyle is for the "Error:" prefix of diagnostics
	ErrorLabelStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for diagnostic text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// MutedStyle is for secondary information
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// EntryStyle maps a configured entry style onto a terminal style.
func EntryStyle(style config.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if style.FgColor != "" {
		s = s.Foreground(lipgloss.Color(style.FgColor))
	}

	switch style.Size {
	case config.Large, config.Huge, config.VeryHuge, config.Larger:
		s = s.Bold(true)
	case config.VeryTiny, config.Tiny, config.Smaller:
		s = s.Faint(true)
	}

	return s
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24 // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}
	return width, height
}
