package session

import (
	sess "github.com/abhisek/pulse/internal/session"
)

// submitDoneMsg is sent when the submission delay for a ticket elapses.
type submitDoneMsg struct {
	Ticket sess.Ticket
}
