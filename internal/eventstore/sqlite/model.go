package sqlite

import (
	"database/sql"

	"activity-sampler/internal/eventstore"
)

// EventRow is one row of the activity_events table.
type EventRow struct {
	Sequence   int64
	ID         string
	RecordedAt string
	Timestamp  string
	Duration   string
	Client     string
	Project    string
	Task       string
	Notes      sql.NullString
	Category   sql.NullString
}

// ToRecord converts the row into a raw event record. Sequence, id and
// recorded_at are storage details and never part of the record.
func (r EventRow) ToRecord() eventstore.Record {
	record := eventstore.Record{
		eventstore.FieldTimestamp: r.Timestamp,
		eventstore.FieldDuration:  r.Duration,
		eventstore.FieldClient:    r.Client,
		eventstore.FieldProject:   r.Project,
		eventstore.FieldTask:      r.Task,
	}
	if r.Notes.Valid && r.Notes.String != "" {
		record[eventstore.FieldNotes] = r.Notes.String
	}
	if r.Category.Valid && r.Category.String != "" {
		record[eventstore.FieldCategory] = r.Category.String
	}
	return record
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
