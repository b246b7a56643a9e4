package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pulse/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for question and
// result sections so that stacked boxes align.
func ContentWidth(frameWidth int) int {
	// Leave room for the card border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return AccentCard(content, cw, theme.Border)
}

// AccentCard is a Card whose border uses the given colour.
func AccentCard(content string, cw int, border color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw-2).
		Padding(0, 1).
		Render(content)
}

// StatCard renders a small headline + body card used on the intro screen.
func StatCard(icon, headline, body string, cw int) string {
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(icon + "  " + headline)
	text := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 4).Render(body)
	return Card(head+"\n"+text, cw)
}
