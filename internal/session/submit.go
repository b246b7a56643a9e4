package session

import (
	"context"
	"time"
)

// DefaultSubmitDelay is the pause between the final answer and the reveal.
const DefaultSubmitDelay = 700 * time.Millisecond

// Wait blocks for d or until ctx is done. It reports whether the full
// delay elapsed.
func Wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Submit advances a state sitting on the answered last step, waits out the
// delay, and completes the submission. If ctx ends first the state is left
// in PhaseSubmitting together with ctx's error; a later CompleteSubmission
// with the same ticket still finishes it.
func Submit(ctx context.Context, s State, delay time.Duration) (State, error) {
	s = s.Advance()
	if s.Phase() != PhaseSubmitting {
		return s, nil
	}
	if !Wait(ctx, delay) {
		return s, ctx.Err()
	}
	return s.CompleteSubmission(s.Ticket()), nil
}
