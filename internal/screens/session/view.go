package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pulse/internal/screens/summary"
	sess "github.com/abhisek/pulse/internal/session"
	"github.com/abhisek/pulse/internal/ui/components"
	"github.com/abhisek/pulse/internal/ui/layout"
	"github.com/abhisek/pulse/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	var body string
	switch {
	case s.confirmQuit:
		body = renderQuitConfirm(width)
	case s.state.Phase() == sess.PhaseSubmitting:
		body = s.renderSubmitting(width)
	case s.state.Phase() == sess.PhaseResults:
		body = summary.Render(summary.Report{
			Definition: s.state.Definition(),
			Result:     s.state.Result(),
			Activity:   s.activity,
			Answered:   s.state.AnsweredCount(),
		}, width, height)
	default:
		body = s.renderQuestionView(width, height)
	}

	if s.journalErr != nil {
		body += "\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("journal unavailable: %v", s.journalErr))
	}
	return body
}

// renderQuestionView renders the progress bar and the current question card.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return renderEmpty(width)
	}

	// height is the content area; add back header + footer
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	cw := components.ContentWidth(width)
	total := s.state.Definition().Len()

	var b strings.Builder

	bar := components.NewProgressBar("", s.state.Progress(), true, cw)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(theme.Eyebrow.Render(fmt.Sprintf("QUESTION %d OF %d", s.state.Step()+1, total)))
	card.WriteString("\n")
	card.WriteString(theme.Title.Render(q.Title))
	card.WriteString("\n")
	card.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 4).Render(q.Prompt))
	if q.Helper != "" && !compact {
		card.WriteString("\n")
		card.WriteString(theme.Hint.Width(cw - 4).Render(q.Helper))
	}
	card.WriteString("\n\n")

	list := s.list
	list.Width = cw - 4
	list.Compact = compact
	card.WriteString(list.View())
	card.WriteString("\n\n")

	nextLabel := "Next →"
	if s.state.IsLast() {
		nextLabel = "See results"
	}
	card.WriteString(components.ButtonRow(cw-4,
		components.NewButton("← Back", s.state.Step() > 0),
		components.NewButton(nextLabel, s.state.CurrentAnswered()),
	))

	b.WriteString(components.Card(card.String(), cw))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderSubmitting renders the spinner shown while the submission is in flight.
func (s *SessionScreen) renderSubmitting(width int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("", s.state.Progress(), true, cw).View())
	b.WriteString("\n\n\n")
	b.WriteString(s.spinner.View() + " " + theme.Title.Render("Crunching your signal..."))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d answers in", s.state.AnsweredCount())))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(b.String())
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave the survey?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderEmpty is shown for a definition without questions.
func renderEmpty(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  This survey has no questions.")
}
