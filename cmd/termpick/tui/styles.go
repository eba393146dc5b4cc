package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

var (
	// TitleStyle is used for the placeholder line above the list.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	// HeaderStyle is used for group separator rows.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// CursorStyle highlights the row under the cursor.
	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	// DimStyle is used for descriptions, hints and scroll indicators.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// HintStyle is used for the footer key hints.
	HintStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)
)
