package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the styled components used by the search TUI.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Query    lipgloss.Style
	Score    lipgloss.Style
	DocID    lipgloss.Style
	Preview  lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Box      lipgloss.Style
}

// IsColorDisabled checks if colors should be disabled.
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// DefaultStyles builds the default style set.
func DefaultStyles() *Styles {
	primary := lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#3B82F6"}
	accent := lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A855F7"}
	success := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	selected := lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"}

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 1),

		Prompt: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Query: lipgloss.NewStyle().
			Foreground(primary),

		Score: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),

		DocID: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Preview: lipgloss.NewStyle().
			Foreground(muted),

		Selected: lipgloss.NewStyle().
			Background(selected).
			Foreground(primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
	}
}
