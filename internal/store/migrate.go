package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// eventColumns are the base columns shared by all event tables: a row id,
// the global sequence number and a wall-clock timestamp.
func eventColumns() []*schema.Column {
	return []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
}

var (
	// surveyEventsColumns holds the columns for the "survey_events" table.
	surveyEventsColumns = append(eventColumns(),
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "action", Type: field.TypeString},
		&schema.Column{Name: "question_id", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "option_id", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "step", Type: field.TypeInt},
		&schema.Column{Name: "phase", Type: field.TypeString},
	)
	// surveyEventsTable records every user intent applied to a session.
	surveyEventsTable = &schema.Table{
		Name:       "survey_events",
		Columns:    surveyEventsColumns,
		PrimaryKey: []*schema.Column{surveyEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "surveyevent_session_id", Columns: []*schema.Column{surveyEventsColumns[3]}},
			{Name: "surveyevent_action", Columns: []*schema.Column{surveyEventsColumns[4]}},
		},
	}

	// resultEventsColumns holds the columns for the "result_events" table.
	resultEventsColumns = append(eventColumns(),
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "survey_title", Type: field.TypeString},
		&schema.Column{Name: "top_category", Type: field.TypeString},
		&schema.Column{Name: "total", Type: field.TypeFloat64},
		&schema.Column{Name: "answered", Type: field.TypeInt},
		&schema.Column{Name: "scores", Type: field.TypeJSON},
	)
	// resultEventsTable records each completed submission.
	resultEventsTable = &schema.Table{
		Name:       "result_events",
		Columns:    resultEventsColumns,
		PrimaryKey: []*schema.Column{resultEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "resultevent_session_id", Columns: []*schema.Column{resultEventsColumns[3]}},
		},
	}

	tables = []*schema.Table{surveyEventsTable, resultEventsTable}
)

// migrate creates or updates the journal tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
