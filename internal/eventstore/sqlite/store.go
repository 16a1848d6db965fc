package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/eventstore/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store keeps the activity log in a SQLite database. The database file is
// only created by the first Record; replaying a missing file yields nothing.
type Store struct {
	path string
	now  func() time.Time

	mu sync.Mutex
	db *sql.DB
}

// New creates a store for dbPath. In-memory databases are opened right away.
func New(ctx context.Context, dbPath string) (*Store, error) {
	s := &Store{path: dbPath, now: time.Now}
	if dbPath == MemoryPath {
		if _, err := s.open(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}

	if s.path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return nil, HandleStorageError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, HandleStorageError("open database", err)
	}
	if s.path == MemoryPath {
		// every connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, HandleStorageError("configure database", err)
		}
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, HandleStorageError("run migrations", err)
	}

	s.db = db
	return db, nil
}

func (s *Store) exists() (bool, error) {
	if s.path == MemoryPath {
		return true, nil
	}
	s.mu.Lock()
	opened := s.db != nil
	s.mu.Unlock()
	if opened {
		return true, nil
	}

	_, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, HandleStorageError("stat database", err)
	}
	return true, nil
}

// Record appends one activity event
func (s *Store) Record(ctx context.Context, activity domain.Activity) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}

	record := eventstore.EncodeActivity(activity)
	query := `
	INSERT INTO activity_events (id, recorded_at, timestamp, duration, client, project, task, notes, category)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = ExecuteWithLastInsertID(ctx, db, query,
		uuid.NewString(),
		FormatTimeForDB(s.now()),
		record[eventstore.FieldTimestamp],
		record[eventstore.FieldDuration],
		activity.Client,
		activity.Project,
		activity.Task,
		nullable(activity.Notes),
		nullable(activity.Category),
	)
	return err
}

// Replay yields every event in append order
func (s *Store) Replay(ctx context.Context) iter.Seq2[eventstore.Record, error] {
	return func(yield func(eventstore.Record, error) bool) {
		exists, err := s.exists()
		if err != nil {
			yield(nil, err)
			return
		}
		if !exists {
			return
		}

		db, err := s.open(ctx)
		if err != nil {
			yield(nil, err)
			return
		}

		query := `SELECT ` + eventColumns + ` FROM activity_events ORDER BY sequence ASC`
		for row, err := range QuerySeq(ctx, db, query, ScanEventRow, "activity events") {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(row.ToRecord(), nil) {
				return
			}
		}
	}
}

// Events returns the stored rows including their storage metadata.
func (s *Store) Events(ctx context.Context) ([]*EventRow, error) {
	exists, err := s.exists()
	if err != nil || !exists {
		return nil, err
	}
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}

	var events []*EventRow
	query := `SELECT ` + eventColumns + ` FROM activity_events ORDER BY sequence ASC`
	for row, err := range QuerySeq(ctx, db, query, ScanEventRow, "activity events") {
		if err != nil {
			return nil, err
		}
		events = append(events, row)
	}
	return events, nil
}
