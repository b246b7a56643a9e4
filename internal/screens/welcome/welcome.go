package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pulse/internal/router"
	"github.com/abhisek/pulse/internal/screen"
	"github.com/abhisek/pulse/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// waveTrace is the heartbeat line scrolled under the banner.
const waveTrace = "───╮╭──╯╰╮╭───────╮╭──╯╰╮╭───────╮╭──╯╰╮╭───"

// sparkle frames cycle around the wave
var sparkleFrames = []string{"•", "◦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	tagline      string
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that shows tagline under the banner and
// transitions to the screen produced by homeFactory.
func New(tagline string, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		tagline:     tagline,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))

	// Phase 2+: the trace scrolls, framed by sparkles
	if w.elapsed >= phase1End {
		sections = append(sections, "", w.renderWave(width))
	}

	// Phase 3+: tagline + hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		if w.tagline != "" {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render(w.tagline))
			sections = append(sections, "")
		}
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderWave returns the heartbeat trace shifted by the tick count.
func (w *WelcomeScreen) renderWave(width int) string {
	trace := []rune(waveTrace)
	n := min(len(trace), max(width-8, 8))
	offset := w.tickCount % len(trace)

	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(trace[(i+offset)%len(trace)])
	}

	sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle) + " " +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(b.String()) + " " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
}
