package session

import (
	"maps"
	"math"

	"github.com/abhisek/pulse/internal/scoring"
	"github.com/abhisek/pulse/internal/survey"
)

// Phase represents the current phase of a survey session.
type Phase int

const (
	PhaseAnswering  Phase = iota // Showing the question at Step
	PhaseSubmitting              // Final answer in, waiting for the reveal
	PhaseResults                 // Showing results
)

// String returns the phase name used in journal events.
func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseSubmitting:
		return "submitting"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Ticket identifies one submission. A completion carrying a stale ticket
// (for example one scheduled before a restart) is ignored.
type Ticket uint64

// State is an immutable snapshot of survey progress. Every transition
// returns a new State; the receiver is never modified.
type State struct {
	def        *survey.Definition
	step       int
	answers    scoring.Answers
	submitting bool
	results    bool
	generation Ticket
}

// New returns the initial state for a definition: first step, no answers.
func New(def *survey.Definition) State {
	return State{def: def, answers: scoring.Answers{}}
}

// Definition returns the survey this state walks through.
func (s State) Definition() *survey.Definition {
	return s.def
}

// Step returns the 0-based index of the current question.
func (s State) Step() int {
	return s.step
}

// Phase returns the current phase.
func (s State) Phase() Phase {
	switch {
	case s.results:
		return PhaseResults
	case s.submitting:
		return PhaseSubmitting
	default:
		return PhaseAnswering
	}
}

// Submitting reports whether the final submission is in flight.
func (s State) Submitting() bool {
	return s.submitting
}

// ShowResults reports whether results are visible.
func (s State) ShowResults() bool {
	return s.results
}

// Ticket returns the ticket of the current (or most recent) submission.
func (s State) Ticket() Ticket {
	return s.generation
}

// Answers returns a copy of the recorded answers.
func (s State) Answers() scoring.Answers {
	return maps.Clone(s.answers)
}

// Answer returns the recorded option ID for a question.
func (s State) Answer(questionID string) (string, bool) {
	oid, ok := s.answers[questionID]
	return oid, ok
}

// AnsweredCount returns how many questions have an answer.
func (s State) AnsweredCount() int {
	return len(s.answers)
}

// CurrentQuestion returns the question at the current step.
func (s State) CurrentQuestion() (survey.Question, bool) {
	if s.def == nil {
		return survey.Question{}, false
	}
	return s.def.QuestionAt(s.step)
}

// CurrentAnswered reports whether the current question has an answer.
func (s State) CurrentAnswered() bool {
	q, ok := s.CurrentQuestion()
	if !ok {
		return false
	}
	_, answered := s.answers[q.ID]
	return answered
}

// IsLast reports whether the current step is the final question.
func (s State) IsLast() bool {
	return s.def != nil && s.step == s.lastIndex()
}

func (s State) lastIndex() int {
	if s.def == nil || s.def.Len() == 0 {
		return 0
	}
	return s.def.Len() - 1
}

// Result scores the recorded answers. It is derived on every call and
// never cached on the state.
func (s State) Result() scoring.Result {
	return scoring.Compute(s.answers, s.def)
}

// Progress returns the progress bar percentage: 100 once results are
// shown, otherwise the share of steps passed, capped at 99.
func (s State) Progress() int {
	if s.results {
		return 100
	}
	last := s.lastIndex()
	if last == 0 {
		return 0
	}
	p := int(math.Round(float64(s.step) / float64(last) * 100))
	return min(p, 99)
}
