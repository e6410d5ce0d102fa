// Package themes defines the visual styles for the checkout TUI.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cardwise/cardwise/internal/model"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Bold         lipgloss.Style
	Selected     lipgloss.Style
	Amount       lipgloss.Style
	Value        lipgloss.Style
	StatusError  lipgloss.Style
	StatusMuted  lipgloss.Style
	Box          lipgloss.Style
	BorderedBox  lipgloss.Style
	CategoryCard lipgloss.Style
	Primary      lipgloss.Color
	Success      lipgloss.Color
	Error        lipgloss.Color
	Muted        lipgloss.Color
	Foreground   lipgloss.Color
	Border       lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary:    lipgloss.Color("#3b82f6"),
	Success:    lipgloss.Color("#10b981"),
	Error:      lipgloss.Color("#ef4444"),
	Muted:      lipgloss.Color("#737373"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3b82f6")),
	Amount: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")),
	StatusMuted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Box: lipgloss.NewStyle().
		Padding(0, 1),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	CategoryCard: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2),
}

// categoryAccents give each shopping category its own accent color.
var categoryAccents = map[model.CategoryID]lipgloss.Color{
	model.CategoryAirlines:  lipgloss.Color("#3b82f6"),
	model.CategoryGrocery:   lipgloss.Color("#10b981"),
	model.CategoryBigTicket: lipgloss.Color("#8b5cf6"),
	model.CategoryDining:    lipgloss.Color("#ef4444"),
}

// CategoryAccent returns the accent color for a category.
func (t Theme) CategoryAccent(id model.CategoryID) lipgloss.Color {
	if accent, ok := categoryAccents[id]; ok {
		return accent
	}
	return t.Primary
}
