// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// GoldColor is the main theme color (Hollywood gold).
	GoldColor = lipgloss.Color("#D4AF37")
	// SuccessColor indicates items already in the user's closet.
	SuccessColor = lipgloss.Color("#90EE90") // Light green
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#999999") // Gray

	// TitleStyle is used for card and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(GoldColor)

	// SubtitleStyle is used for secondary headings and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// OwnedStyle formats closet-owned item annotations.
	OwnedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// BadgeStyle formats the detected-era badge.
	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(GoldColor).
			Padding(0, 1)

	// HeritageStyle formats the historical-context callout.
	HeritageStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(SubtleColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(GoldColor).
			PaddingLeft(1)

	// CardStyle is used for bordered suggestion cards.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(GoldColor).
			Padding(1, 2)
)
