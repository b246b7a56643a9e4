package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pulse/internal/router"
	"github.com/abhisek/pulse/internal/screens/home"
	"github.com/abhisek/pulse/internal/screens/session"
	"github.com/abhisek/pulse/internal/screens/welcome"
	"github.com/abhisek/pulse/internal/survey"
)

// drive feeds msg to the model and then runs the returned command once,
// feeding its message back in, as the Bubble Tea runtime would.
func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd != nil {
		if out := cmd(); out != nil {
			if _, quit := out.(tea.QuitMsg); !quit {
				next, _ = m.Update(out)
				m = next.(AppModel)
			}
		}
	}
	return m
}

func TestNewAppModel_StartsOnSplash(t *testing.T) {
	m := newAppModel(Options{Definition: survey.Default()})
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok, "expected welcome screen, got %T", m.router.Active())
	assert.NotNil(t, m.Init(), "splash should start its animation tick")
}

func TestNewAppModel_SkipSplash(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok, "expected home screen, got %T", m.router.Active())
}

func TestEscHandledBySurvey(t *testing.T) {
	m := newAppModel(Options{Definition: survey.Default(), SkipSplash: true})

	// Begin survey.
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())
	_, ok := m.router.Active().(*session.SessionScreen)
	require.True(t, ok, "expected session screen, got %T", m.router.Active())

	// Esc opens the survey's confirmation instead of popping.
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 2, m.router.Depth())

	// Y confirms and returns home.
	m = drive(t, m, tea.KeyPressMsg{Code: 'y', Text: "y"})
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscOnHomeIsNoop(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, next.(AppModel).router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})

	// No size yet.
	assert.Empty(t, m.render())
	assert.True(t, m.View().AltScreen)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, next.(AppModel).render(), "Terminal too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	content := next.(AppModel).render()
	assert.Contains(t, content, "Pulse")
	assert.Contains(t, content, "Begin survey")
}

func TestPopMessageReturnsHome(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())
	m = drive(t, m, router.PopScreenMsg{})
	assert.Equal(t, 1, m.router.Depth())
}
