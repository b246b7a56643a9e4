package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pulse/internal/ui/theme"
)

// Button is a styled navigation button. Inactive buttons render dimmed.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{
		Label:  label,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	label := " " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side with the first left-aligned and
// the rest right-aligned within width.
func ButtonRow(width int, left Button, right ...Button) string {
	l := left.View()
	var r string
	for i, b := range right {
		if i > 0 {
			r += " "
		}
		r += b.View()
	}
	gap := width - lipgloss.Width(l) - lipgloss.Width(r)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, l, lipgloss.NewStyle().Width(gap).Render(""), r)
}
