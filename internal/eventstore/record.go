package eventstore

import (
	"time"

	"activity-sampler/internal/domain"
)

// Record is one raw "activity logged" event as stored. All values are
// strings on the wire; optional fields are omitted when empty.
type Record = map[string]any

// Record field names.
const (
	FieldTimestamp = "timestamp"
	FieldDuration  = "duration"
	FieldClient    = "client"
	FieldProject   = "project"
	FieldTask      = "task"
	FieldNotes     = "notes"
	FieldCategory  = "category"
)

// RequiredFields and OptionalFields make up the record schema.
var (
	RequiredFields = []string{FieldTimestamp, FieldDuration, FieldClient, FieldProject, FieldTask}
	OptionalFields = []string{FieldNotes, FieldCategory}
)

// TimestampLayout is the layout used when encoding timestamps.
const TimestampLayout = time.RFC3339Nano

// EncodeActivity converts an activity into its raw record. The timestamp is
// stored as a UTC instant.
func EncodeActivity(a domain.Activity) Record {
	record := Record{
		FieldTimestamp: a.DateTime.UTC().Format(TimestampLayout),
		FieldDuration:  domain.FormatISODuration(a.Duration),
		FieldClient:    a.Client,
		FieldProject:   a.Project,
		FieldTask:      a.Task,
	}
	if a.Notes != "" {
		record[FieldNotes] = a.Notes
	}
	if a.Category != "" {
		record[FieldCategory] = a.Category
	}
	return record
}

// stringField returns record[key] when it is a string.
func stringField(record Record, key string) string {
	s, _ := record[key].(string)
	return s
}
