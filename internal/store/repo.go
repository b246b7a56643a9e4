package store

import "context"

// Journal actions.
const (
	ActionStart   = "start"
	ActionSelect  = "select"
	ActionAdvance = "advance"
	ActionRetreat = "retreat"
	ActionSubmit  = "submit"
	ActionResults = "results"
	ActionRestart = "restart"
)

// SurveyEventData captures one user intent applied to a session.
type SurveyEventData struct {
	SessionID  string
	Action     string
	QuestionID string
	OptionID   string
	Step       int
	Phase      string
}

// ResultEventData captures the scored outcome of a submission.
type ResultEventData struct {
	SessionID   string
	SurveyTitle string
	TopCategory string
	Total       float64
	Answered    int
	Scores      map[string]float64
}

// Activity summarises what happened in one session so far.
type Activity struct {
	Selections int // select events
	Revisions  int // selects that replaced a different earlier answer
	Retreats   int
	Restarts   int
	Results    int // completed submissions
}

// EventRepo provides append and summary access to the session journal.
type EventRepo interface {
	// AppendSurveyEvent records a user intent.
	AppendSurveyEvent(ctx context.Context, data SurveyEventData) error

	// AppendResultEvent records a completed submission.
	AppendResultEvent(ctx context.Context, data ResultEventData) error

	// Activity summarises the journal for one session.
	Activity(ctx context.Context, sessionID string) (Activity, error)
}
