// ABOUTME: Shared lipgloss styles for consistent terminal output
// ABOUTME: Defines colors and text styles used by every command

package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#E11D48") // Rose, cinema curtain
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Gold      = lipgloss.Color("#FBBF24") // Ratings
	Surface   = lipgloss.Color("#374151") // Empty bar segments

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted)

	// Key style for labels in key/value output
	KeyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(12)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// ID style for the numeric ids users pass back to commands
	IDStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Width(6).
		Align(lipgloss.Right)
)

// RatingBar renders a 0-10 vote average as a bar of the given width
func RatingBar(vote float64, width int) string {
	if width <= 0 {
		width = 10
	}
	if vote < 0 {
		vote = 0
	}
	if vote > 10 {
		vote = 10
	}

	filled := int(vote / 10.0 * float64(width))
	color := Danger
	if vote >= 5 {
		color = Warning
	}
	if vote >= 7 {
		color = Secondary
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(Surface).Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, lipgloss.NewStyle().Foreground(Gold).Render(fmt.Sprintf("%.1f", vote)))
}
