package components

import (
	"charm.land/lipgloss/v2"

	"github.com/fretwise/fretwise/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked cards.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for outer border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// StageFrame wraps content in a double-border frame, centering it
// within the given dimensions.
func StageFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// AccentCard is Card with the border drawn in an accent color keyed by
// a view-model color class.
func AccentCard(content string, cw int, colorClass string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ForClass(colorClass)).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}
