package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendSurveyEvent(ctx context.Context, data SurveyEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := r.builder().
		Insert(surveyEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "action", "question_id", "option_id", "step", "phase").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Action, data.QuestionID, data.OptionID, data.Step, data.Phase).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save survey event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendResultEvent(ctx context.Context, data ResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	scores, err := json.Marshal(data.Scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	query, args := r.builder().
		Insert(resultEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "survey_title", "top_category", "total", "answered", "scores").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.SurveyTitle, data.TopCategory, data.Total, data.Answered, string(scores)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) Activity(ctx context.Context, sessionID string) (Activity, error) {
	var act Activity

	query, args := r.builder().
		Select("action", "question_id", "option_id").
		From(entsql.Table(surveyEventsTable.Name)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return act, fmt.Errorf("query survey events: %w", err)
	}
	defer rows.Close()

	// Revisions reset on restart, since the answer set does too.
	current := make(map[string]string)
	for rows.Next() {
		var action, questionID, optionID string
		if err := rows.Scan(&action, &questionID, &optionID); err != nil {
			return act, fmt.Errorf("scan survey event: %w", err)
		}
		switch action {
		case ActionSelect:
			act.Selections++
			if prev, ok := current[questionID]; ok && prev != optionID {
				act.Revisions++
			}
			current[questionID] = optionID
		case ActionRetreat:
			act.Retreats++
		case ActionRestart:
			act.Restarts++
			current = make(map[string]string)
		}
	}
	if err := rows.Err(); err != nil {
		return act, fmt.Errorf("iterate survey events: %w", err)
	}

	count, err := r.countResults(ctx, sessionID)
	if err != nil {
		return act, err
	}
	act.Results = count
	return act, nil
}

func (r *eventRepo) countResults(ctx context.Context, sessionID string) (int, error) {
	query, args := r.builder().
		Select(entsql.Count("*")).
		From(entsql.Table(resultEventsTable.Name)).
		Where(entsql.EQ("session_id", sessionID)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("count result events: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scan result count: %w", err)
		}
	}
	return n, rows.Err()
}
