package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for report and prompt rendering
var (
	SuccessColor = lipgloss.Color("#43BF6D") // Green - matched rows, converged banner
	ErrorColor   = lipgloss.Color("#FF5555") // Red - mismatched rows, mismatch banner
	WarningColor = lipgloss.Color("#FFA500") // Orange - prompts
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for the audit report
var (
	// HeaderStyle is for the device header (NAME/TYPE lines)
	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// MatchRowStyle is for rules whose observed value matches
	MatchRowStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// MismatchRowStyle is for rules whose observed value differs
	MismatchRowStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// LabelStyle is for optional rule annotations
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// ConvergedStyle is for the all-rules-matched banner
	ConvergedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// MismatchBannerStyle is for the mapping-did-not-match banner
	MismatchBannerStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// PromptStyle is for the apply confirmation question
	PromptStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// MutedStyle is for secondary informational text
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
