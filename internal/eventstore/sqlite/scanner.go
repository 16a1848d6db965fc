package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanEventRow scans a single event row selected with eventColumns
func ScanEventRow(scanner Scanner) (*EventRow, error) {
	row := &EventRow{}
	err := scanner.Scan(
		&row.Sequence,
		&row.ID,
		&row.RecordedAt,
		&row.Timestamp,
		&row.Duration,
		&row.Client,
		&row.Project,
		&row.Task,
		&row.Notes,
		&row.Category,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

const eventColumns = `sequence, id, recorded_at, timestamp, duration, client, project, task, notes, category`
