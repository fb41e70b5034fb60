package components

import (
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for centered
// sections so stacked cards visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// SelectedCard wraps content in a highlighted card, used for the
// focused entry in a list of cards.
func SelectedCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}
