package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nyayak/docket/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityColor returns the style for a priority tier.
func PriorityColor(tier domain.PriorityTier) lipgloss.Style {
	switch tier {
	case domain.PriorityCritical:
		return StyleRed
	case domain.PriorityImportant:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// PriorityIndicator returns a colored indicator such as "● CRITICAL".
func PriorityIndicator(tier domain.PriorityTier) string {
	switch tier {
	case domain.PriorityCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.PriorityImportant:
		return StyleYellow.Render("● IMPORTANT")
	default:
		return StyleGreen.Render("● NORMAL")
	}
}

// KindColor returns the style for an event kind.
func KindColor(kind domain.EventKind) lipgloss.Style {
	switch kind {
	case domain.KindCourt:
		return StylePurple
	case domain.KindDeadline:
		return StyleRed
	case domain.KindMeeting:
		return StyleBlue
	default:
		return StyleFg
	}
}

// Header renders a section header with the orange header style and an
// underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}
