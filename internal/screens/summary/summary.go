package summary

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pulse/internal/scoring"
	"github.com/abhisek/pulse/internal/store"
	"github.com/abhisek/pulse/internal/survey"
	"github.com/abhisek/pulse/internal/ui/components"
	"github.com/abhisek/pulse/internal/ui/layout"
	"github.com/abhisek/pulse/internal/ui/theme"
)

// Report is everything the results view needs.
type Report struct {
	Definition *survey.Definition
	Result     scoring.Result
	Activity   store.Activity
	Answered   int
}

// Render draws the results view: the top category with its moves,
// followed by the per-category breakdown in declaration order.
func Render(r Report, width, height int) string {
	if r.Definition == nil {
		return ""
	}

	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)

	top, _ := r.Definition.Category(r.Result.Top)
	accent := theme.AccentColor(top.Accent)

	var sections []string

	// Hero card.
	var hero strings.Builder
	eyebrow := "YOUR TOP SIGNAL"
	if len(r.Result.Ranked) == 0 {
		eyebrow = "NO STRONG SIGNAL YET"
	}
	hero.WriteString(theme.Eyebrow.Render(eyebrow))
	hero.WriteString("\n")
	hero.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(top.Title))
	if top.Headline != "" {
		hero.WriteString("\n")
		hero.WriteString(theme.Title.Width(cw - 4).Render(top.Headline))
	}
	if top.Description != "" && !compact {
		hero.WriteString("\n\n")
		hero.WriteString(theme.Subtitle.Width(cw - 4).Render(top.Description))
	}
	if len(top.Moves) > 0 {
		hero.WriteString("\n\n")
		hero.WriteString(theme.Eyebrow.Render("NEXT MOVES"))
		for _, m := range top.Moves {
			hero.WriteString("\n")
			hero.WriteString(lipgloss.NewStyle().Foreground(accent).Render("→ ") +
				lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).Render(m))
		}
	}
	sections = append(sections, components.AccentCard(hero.String(), cw, accent))

	// Breakdown.
	sections = append(sections, renderBreakdown(r, cw))

	// Activity line.
	sections = append(sections, theme.Hint.Render(activityLine(r)))

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func renderBreakdown(r Report, cw int) string {
	labelWidth := 0
	for _, c := range r.Definition.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(c.Title))
	}
	labelWidth += 2 // marker

	var b strings.Builder
	b.WriteString(theme.Eyebrow.Render("BREAKDOWN"))
	for _, cs := range r.Result.Breakdown() {
		cat, _ := r.Definition.Category(cs.Category)
		marker := "  "
		if cs.Category == r.Result.Top {
			marker = "★ "
		}
		label := fmt.Sprintf("%-*s", labelWidth, marker+cat.Title)
		bar := components.NewProgressBar(label, cs.Percentage, true, cw-4).
			WithFill(theme.AccentColor(cat.Accent))
		b.WriteString("\n")
		b.WriteString(bar.View())
	}
	return components.Card(b.String(), cw)
}

func activityLine(r Report) string {
	parts := []string{
		plural(r.Answered, "answer", "answers"),
		plural(r.Activity.Revisions, "revision", "revisions"),
	}
	if r.Activity.Retreats > 0 {
		parts = append(parts, plural(r.Activity.Retreats, "step back", "steps back"))
	}
	if r.Activity.Restarts > 0 {
		parts = append(parts, plural(r.Activity.Restarts, "restart", "restarts"))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
