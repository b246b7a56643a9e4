package session

import "maps"

// Select records optionID as the answer to questionID. Only the question at
// the current step can be answered, and only while answering; anything else
// (including an option that does not belong to the question) returns the
// state unchanged. Re-selecting overwrites the previous answer.
func (s State) Select(questionID, optionID string) State {
	if s.Phase() != PhaseAnswering {
		return s
	}
	q, ok := s.CurrentQuestion()
	if !ok || q.ID != questionID {
		return s
	}
	if _, ok := q.Option(optionID); !ok {
		return s
	}

	next := s
	next.answers = maps.Clone(s.answers)
	next.answers[questionID] = optionID
	return next
}

// SelectCurrent records optionID for the question at the current step.
func (s State) SelectCurrent(optionID string) State {
	q, ok := s.CurrentQuestion()
	if !ok {
		return s
	}
	return s.Select(q.ID, optionID)
}

// Advance moves to the next step. It is a no-op unless answering with the
// current question answered. On the last step it starts the submission and
// mints a new ticket; the caller completes it with CompleteSubmission.
func (s State) Advance() State {
	if s.Phase() != PhaseAnswering || !s.CurrentAnswered() {
		return s
	}

	next := s
	if s.IsLast() {
		next.submitting = true
		next.generation = s.generation + 1
		return next
	}
	next.step = min(s.step+1, s.lastIndex())
	return next
}

// Retreat moves back one step, floored at the first question.
func (s State) Retreat() State {
	if s.Phase() != PhaseAnswering {
		return s
	}
	next := s
	next.step = max(s.step-1, 0)
	return next
}

// CompleteSubmission finishes the submission identified by t and shows
// results. Stale tickets and calls outside the submitting phase are ignored.
func (s State) CompleteSubmission(t Ticket) State {
	if s.Phase() != PhaseSubmitting || t != s.generation {
		return s
	}
	next := s
	next.submitting = false
	next.results = true
	return next
}

// Restart returns to the first question with no answers. The submission
// generation is bumped so a pending completion cannot land afterwards.
func (s State) Restart() State {
	next := New(s.def)
	next.generation = s.generation + 1
	return next
}
