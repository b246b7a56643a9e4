package session

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pulse/internal/router"
	"github.com/abhisek/pulse/internal/screen"
	sess "github.com/abhisek/pulse/internal/session"
	"github.com/abhisek/pulse/internal/store"
	"github.com/abhisek/pulse/internal/survey"
	"github.com/abhisek/pulse/internal/ui/components"
	"github.com/abhisek/pulse/internal/ui/layout"
	"github.com/abhisek/pulse/internal/ui/theme"

	"github.com/google/uuid"
)

// SessionScreen walks the user through one survey and shows the results
// in place once the final answer is submitted.
type SessionScreen struct {
	state       sess.State
	sessionID   string
	eventRepo   store.EventRepo
	submitDelay time.Duration

	list    components.OptionList
	spinner spinner.Model

	activity    store.Activity
	confirmQuit bool
	journalErr  error
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a SessionScreen for def. eventRepo may be nil, in which case
// nothing is journaled.
func New(def *survey.Definition, eventRepo store.EventRepo, submitDelay time.Duration) *SessionScreen {
	s := &SessionScreen{
		state:       sess.New(def),
		sessionID:   uuid.New().String(),
		eventRepo:   eventRepo,
		submitDelay: submitDelay,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
	s.syncList()
	return s
}

// State returns the current survey progress.
func (s *SessionScreen) State() sess.State {
	return s.state
}

// SessionID returns the journal session ID of this screen.
func (s *SessionScreen) SessionID() string {
	return s.sessionID
}

func (s *SessionScreen) Init() tea.Cmd {
	s.journal(store.ActionStart, "", "")
	return nil
}

func (s *SessionScreen) Title() string {
	if s.state.Definition() != nil && s.state.Definition().Title != "" {
		return s.state.Definition().Title
	}
	return "Survey"
}

func (s *SessionScreen) Status() string {
	switch s.state.Phase() {
	case sess.PhaseResults:
		return "Results"
	case sess.PhaseSubmitting:
		return "Submitting"
	}
	def := s.state.Definition()
	if def == nil || def.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("Step %d of %d", s.state.Step()+1, def.Len())
}

func (s *SessionScreen) HandlesEscape() bool {
	return s.state.Phase() != sess.PhaseResults
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave survey"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.state.Phase() {
	case sess.PhaseSubmitting:
		return []layout.KeyHint{
			{Key: "R", Description: "Restart"},
			{Key: "Esc", Description: "Leave"},
		}
	case sess.PhaseResults:
		return []layout.KeyHint{
			{Key: "R", Description: "Restart"},
			{Key: "Esc", Description: "Home"},
			{Key: "Q", Description: "Quit"},
		}
	}
	next := "Next"
	if s.state.IsLast() {
		next = "See results"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "1-9/Space", Description: "Choose"},
		{Key: "Enter", Description: next},
		{Key: "←", Description: "Back"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case spinner.TickMsg:
		if s.state.Phase() != sess.PhaseSubmitting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	k := msg.String()

	if s.confirmQuit {
		switch k {
		case "y", "Y":
			s.confirmQuit = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if k == "esc" {
		if s.state.Phase() != sess.PhaseResults {
			s.confirmQuit = true
		}
		return s, nil
	}

	if key.Matches(msg, components.Keys.Restart) {
		return s.restart()
	}

	if s.state.Phase() == sess.PhaseResults && key.Matches(msg, components.Keys.Quit) {
		return s, tea.Quit
	}

	if s.state.Phase() != sess.PhaseAnswering {
		return s, nil
	}

	switch {
	case key.Matches(msg, components.Keys.Up):
		s.list = s.list.Up()
	case key.Matches(msg, components.Keys.Down):
		s.list = s.list.Down()
	case key.Matches(msg, components.Keys.Choose):
		s.chooseCursor()
	case key.Matches(msg, components.Keys.Next):
		// Next on an unanswered question takes the highlighted option.
		if !s.state.CurrentAnswered() {
			s.chooseCursor()
		}
		return s.advance()
	case key.Matches(msg, components.Keys.Back):
		s.retreat()
	default:
		if i := components.DigitIndex(k); i >= 0 && i < len(s.list.Options) {
			s.list = s.list.Focus(i)
			s.chooseCursor()
		}
	}
	return s, nil
}

func (s *SessionScreen) chooseCursor() {
	opt, ok := s.list.Current()
	if !ok {
		return
	}
	q, _ := s.state.CurrentQuestion()
	if prev, _ := s.state.Answer(q.ID); prev == opt.ID {
		return
	}
	s.state = s.state.Select(q.ID, opt.ID)
	s.list.Chosen = s.list.Cursor
	s.journal(store.ActionSelect, q.ID, opt.ID)
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	q, _ := s.state.CurrentQuestion()
	next := s.state.Advance()
	if next.Phase() == s.state.Phase() && next.Step() == s.state.Step() {
		return s, nil
	}
	s.state = next

	if s.state.Phase() == sess.PhaseSubmitting {
		s.journal(store.ActionSubmit, q.ID, "")
		ticket := s.state.Ticket()
		return s, tea.Batch(
			s.spinner.Tick,
			tea.Tick(s.submitDelay, func(time.Time) tea.Msg {
				return submitDoneMsg{Ticket: ticket}
			}),
		)
	}

	s.journal(store.ActionAdvance, q.ID, "")
	s.syncList()
	return s, nil
}

func (s *SessionScreen) retreat() {
	next := s.state.Retreat()
	if next.Step() == s.state.Step() {
		return
	}
	s.state = next
	q, _ := s.state.CurrentQuestion()
	s.journal(store.ActionRetreat, q.ID, "")
	s.syncList()
}

func (s *SessionScreen) restart() (screen.Screen, tea.Cmd) {
	s.state = s.state.Restart()
	s.activity = store.Activity{}
	s.confirmQuit = false
	s.journal(store.ActionRestart, "", "")
	s.syncList()
	return s, nil
}

func (s *SessionScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	next := s.state.CompleteSubmission(msg.Ticket)
	if next.Phase() != sess.PhaseResults {
		// Stale ticket from before a restart.
		return s, nil
	}
	s.state = next
	s.confirmQuit = false
	s.journal(store.ActionResults, "", "")
	s.recordResult()
	return s, nil
}

// recordResult journals the scored outcome and refreshes the activity
// summary shown under the results.
func (s *SessionScreen) recordResult() {
	if s.eventRepo == nil {
		return
	}
	ctx := context.Background()
	res := s.state.Result()

	scores := make(map[string]float64, len(res.Scores))
	for _, cs := range res.Scores {
		scores[string(cs.Category)] = cs.Raw
	}
	title := ""
	if def := s.state.Definition(); def != nil {
		title = def.Title
	}
	if err := s.eventRepo.AppendResultEvent(ctx, store.ResultEventData{
		SessionID:   s.sessionID,
		SurveyTitle: title,
		TopCategory: string(res.Top),
		Total:       res.Total,
		Answered:    s.state.AnsweredCount(),
		Scores:      scores,
	}); err != nil {
		s.journalErr = err
	}

	act, err := s.eventRepo.Activity(ctx, s.sessionID)
	if err != nil {
		s.journalErr = err
		return
	}
	s.activity = act
}

// journal records one user intent. Failures never block the survey; the
// last error is shown under the content.
func (s *SessionScreen) journal(action, questionID, optionID string) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendSurveyEvent(context.Background(), store.SurveyEventData{
		SessionID:  s.sessionID,
		Action:     action,
		QuestionID: questionID,
		OptionID:   optionID,
		Step:       s.state.Step(),
		Phase:      s.state.Phase().String(),
	})
	if err != nil {
		s.journalErr = err
	}
}

// syncList rebuilds the option list for the current question.
func (s *SessionScreen) syncList() {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		s.list = components.OptionList{Chosen: -1}
		return
	}
	chosen, _ := s.state.Answer(q.ID)
	s.list = components.NewOptionList(q, chosen, s.list.Width)
}
