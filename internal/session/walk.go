package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/pulse/internal/scoring"
)

// Step records one user intent applied during a walk.
type Step struct {
	Action     string
	QuestionID string
	OptionID   string
	Index      int // step after the intent was applied
	Phase      Phase
}

// Walk drives a fresh session through the survey headlessly: for each
// question in order it selects the answer from answers and advances, then
// waits for the submission to complete. The observer, if set, sees every
// applied intent. Walk stops with an error at the first question that has
// no usable answer.
func Walk(ctx context.Context, s State, answers scoring.Answers, delay time.Duration, observe func(Step)) (State, error) {
	if observe == nil {
		observe = func(Step) {}
	}

	for s.Phase() == PhaseAnswering {
		q, ok := s.CurrentQuestion()
		if !ok {
			return s, fmt.Errorf("no question at step %d", s.Step())
		}

		s = s.Select(q.ID, answers[q.ID])
		if !s.CurrentAnswered() {
			return s, fmt.Errorf("question %q: no valid answer (got %q)", q.ID, answers[q.ID])
		}
		observe(Step{Action: "select", QuestionID: q.ID, OptionID: answers[q.ID], Index: s.Step(), Phase: s.Phase()})

		if s.IsLast() {
			next, err := Submit(ctx, s, delay)
			observe(Step{Action: "submit", QuestionID: q.ID, Index: next.Step(), Phase: PhaseSubmitting})
			if err != nil {
				return next, fmt.Errorf("submit: %w", err)
			}
			observe(Step{Action: "results", Index: next.Step(), Phase: next.Phase()})
			return next, nil
		}

		s = s.Advance()
		observe(Step{Action: "advance", QuestionID: q.ID, Index: s.Step(), Phase: s.Phase()})
	}
	return s, nil
}
