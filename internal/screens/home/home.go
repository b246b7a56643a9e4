package home

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pulse/internal/router"
	"github.com/abhisek/pulse/internal/screen"
	"github.com/abhisek/pulse/internal/survey"
	"github.com/abhisek/pulse/internal/ui/components"
	"github.com/abhisek/pulse/internal/ui/layout"
	"github.com/abhisek/pulse/internal/ui/theme"
)

// secondsPerQuestion drives the time estimate on the intro card.
const secondsPerQuestion = 20

// HomeScreen introduces the survey and starts sessions.
type HomeScreen struct {
	def  *survey.Definition
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for def. newSession builds a fresh survey
// screen each time the user begins.
func New(def *survey.Definition, newSession func() screen.Screen) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Begin survey", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newSession()}
			}
		}, Disabled: def == nil || def.Len() == 0},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{
		def:  def,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, components.Keys.Quit) {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.def == nil {
		return ""
	}
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string

	// Title card.
	var intro strings.Builder
	intro.WriteString(theme.Eyebrow.Render("PULSE CHECK"))
	intro.WriteString("\n")
	intro.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(h.def.Title))
	if h.def.Tagline != "" {
		intro.WriteString("\n")
		intro.WriteString(theme.Title.Width(cw - 4).Render(h.def.Tagline))
	}
	if h.def.Description != "" && !compact {
		intro.WriteString("\n\n")
		intro.WriteString(theme.Subtitle.Width(cw - 4).Render(h.def.Description))
	}
	sections = append(sections, components.AccentCard(intro.String(), cw, theme.Primary))

	// Stats.
	if compact {
		sections = append(sections, theme.Subtitle.Render(statsLine(h.def)))
	} else {
		half := (cw - 1) / 2
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			components.StatCard("◉", plural(h.def.Len(), "question", "questions"),
				"One pick each. Change your mind any time before the last step.", half),
			" ",
			components.StatCard("◆", plural(len(h.def.Categories), "signal", "signals"),
				categoryNames(h.def), half),
		))
	}

	// Menu.
	sections = append(sections, h.menu.View())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n\n"))
}

func statsLine(def *survey.Definition) string {
	return fmt.Sprintf("%s · %s · about %s",
		plural(def.Len(), "question", "questions"),
		plural(len(def.Categories), "signal", "signals"),
		estimate(def.Len()))
}

// estimate returns a rough completion time for n questions.
func estimate(n int) string {
	secs := n * secondsPerQuestion
	if secs < 60 {
		return fmt.Sprintf("%d sec", secs)
	}
	return fmt.Sprintf("%d min", (secs+59)/60)
}

func categoryNames(def *survey.Definition) string {
	names := make([]string, 0, len(def.Categories))
	for _, c := range def.Categories {
		names = append(names, c.Title)
	}
	return strings.Join(names, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
