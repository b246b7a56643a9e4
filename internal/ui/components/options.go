package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pulse/internal/survey"
	"github.com/abhisek/pulse/internal/ui/theme"
)

// OptionList renders the choices of one question. Cursor is the
// highlighted row; Chosen is the index of the recorded answer, or -1.
type OptionList struct {
	Options []survey.Option
	Cursor  int
	Chosen  int
	Width   int
	Compact bool // hide option descriptions
}

// NewOptionList creates an option list positioned on the recorded answer
// when there is one, otherwise on the first option.
func NewOptionList(q survey.Question, chosenID string, width int) OptionList {
	chosen := -1
	if chosenID != "" {
		chosen = q.OptionIndex(chosenID)
	}
	return OptionList{
		Options: q.Options,
		Cursor:  max(chosen, 0),
		Chosen:  chosen,
		Width:   width,
	}
}

// Up moves the cursor one row up, stopping at the first option.
func (l OptionList) Up() OptionList {
	if l.Cursor > 0 {
		l.Cursor--
	}
	return l
}

// Down moves the cursor one row down, stopping at the last option.
func (l OptionList) Down() OptionList {
	if l.Cursor < len(l.Options)-1 {
		l.Cursor++
	}
	return l
}

// Focus moves the cursor to i when it is in range.
func (l OptionList) Focus(i int) OptionList {
	if i >= 0 && i < len(l.Options) {
		l.Cursor = i
	}
	return l
}

// Current returns the option under the cursor.
func (l OptionList) Current() (survey.Option, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Options) {
		return survey.Option{}, false
	}
	return l.Options[l.Cursor], true
}

// View renders the list.
func (l OptionList) View() string {
	var b strings.Builder
	for i, opt := range l.Options {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(l.renderOption(i, opt))
	}
	return b.String()
}

func (l OptionList) renderOption(i int, opt survey.Option) string {
	marker := "○"
	if i == l.Chosen {
		marker = "●"
	}
	cursor := "  "
	if i == l.Cursor {
		cursor = "▸ "
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case i == l.Chosen:
		labelStyle = labelStyle.Foreground(theme.Accent).Bold(true)
	case i == l.Cursor:
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}

	line := fmt.Sprintf("%s%s %d. %s", cursor, marker, i+1, opt.Label)
	line = labelStyle.Render(line)
	if opt.Badge != "" {
		line += "  " + lipgloss.NewStyle().Foreground(theme.TextMuted).Render("["+opt.Badge+"]")
	}

	if l.Compact || opt.Description == "" {
		return line
	}

	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		PaddingLeft(7).
		Width(max(l.Width, 20)).
		Render(opt.Description)
	return line + "\n" + desc
}
