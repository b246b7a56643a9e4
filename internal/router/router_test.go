package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pulse/internal/screen"
)

type nextMsg struct{}

// fakeScreen stands in for the splash, home and survey screens. It counts
// Init calls and, like the survey screen, can report a header status and
// claim Esc while a survey is in progress.
type fakeScreen struct {
	title    string
	inits    int
	step     int
	finished bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(nextMsg); ok {
		f.step++
	}
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.title }
func (f *fakeScreen) Title() string        { return f.title }
func (f *fakeScreen) Status() string {
	if f.finished {
		return "Results"
	}
	return "step"
}
func (f *fakeScreen) HandlesEscape() bool { return !f.finished }

var (
	_ screen.StatusProvider = (*fakeScreen)(nil)
	_ screen.EscapeHandler  = (*fakeScreen)(nil)
)

// successor returns a different screen from Update, the way the splash
// hands over to home.
type successor struct {
	next screen.Screen
}

func (s *successor) Init() tea.Cmd                           { return nil }
func (s *successor) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s.next, nil }
func (s *successor) View(int, int) string                    { return "" }
func (s *successor) Title() string                           { return "" }

func TestRouter_SplashReplacedByHome(t *testing.T) {
	splash := &fakeScreen{title: "splash"}
	r := New(splash)

	home := &fakeScreen{title: "Home"}
	r.Update(ReplaceScreenMsg{Screen: home})

	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
	assert.Equal(t, 1, home.inits)
	assert.Zero(t, splash.inits, "the router does not init its initial screen")
}

func TestRouter_SurveyOverHome(t *testing.T) {
	home := &fakeScreen{title: "Home"}
	r := New(home)

	survey := &fakeScreen{title: "Survey"}
	r.Update(PushScreenMsg{Screen: survey})
	require.Equal(t, 2, r.Depth())
	assert.Equal(t, 1, survey.inits)

	// Messages reach only the active screen.
	r.Update(nextMsg{})
	r.Update(nextMsg{})
	assert.Equal(t, 2, survey.step)
	assert.Zero(t, home.step)
	assert.Equal(t, "Survey", r.View(80, 24))

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
	assert.Zero(t, home.inits, "pop does not re-init the screen underneath")
}

func TestRouter_ActiveKeepsOptionalInterfaces(t *testing.T) {
	r := New(&fakeScreen{title: "Home"})
	r.Push(&fakeScreen{title: "Survey"})
	r.Update(nextMsg{})

	esc, ok := r.Active().(screen.EscapeHandler)
	require.True(t, ok)
	assert.True(t, esc.HandlesEscape())

	status, ok := r.Active().(screen.StatusProvider)
	require.True(t, ok)
	assert.Equal(t, "step", status.Status())

	r.Active().(*fakeScreen).finished = true
	assert.False(t, esc.HandlesEscape(), "results let the app pop the survey")
	assert.Equal(t, "Results", status.Status())
}

func TestRouter_UpdateStoresReturnedScreen(t *testing.T) {
	home := &fakeScreen{title: "Home"}
	r := New(&successor{next: home})

	r.Update(nextMsg{})
	assert.Same(t, home, r.Active())
	assert.Equal(t, 1, r.Depth())
}

func TestRouter_PopKeepsLastScreen(t *testing.T) {
	home := &fakeScreen{title: "Home"}
	r := New(home)

	assert.Nil(t, r.Pop())
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
}

func TestRouter_ReplaceOnTopOfStack(t *testing.T) {
	r := New(&fakeScreen{title: "Home"})
	r.Push(&fakeScreen{title: "Survey"})

	fresh := &fakeScreen{title: "Survey again"}
	r.Replace(fresh)

	assert.Equal(t, 2, r.Depth())
	assert.Same(t, fresh, r.Active())
	assert.Equal(t, 1, fresh.inits)
}

func TestRouter_EmptyStack(t *testing.T) {
	r := &Router{}
	assert.Nil(t, r.Active())
	assert.Empty(t, r.View(80, 24))
	assert.Nil(t, r.Update(nextMsg{}))

	home := &fakeScreen{title: "Home"}
	r.Replace(home)
	assert.Same(t, home, r.Active())
}
