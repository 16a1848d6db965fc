package postgres

import (
	"context"
	_ "embed"
	"errors"
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"activity-sampler/internal/domain"
	apperrors "activity-sampler/internal/errors"
	"activity-sampler/internal/eventstore"
)

//go:embed schema.sql
var schema string

// undefinedTable is the SQLSTATE for a missing relation.
const undefinedTable = "42P01"

// Store keeps the activity log in Postgres. The table is created by the
// first Record; replaying before that yields nothing.
type Store struct {
	pool *pgxpool.Pool
	now  func() time.Time

	mu       sync.Mutex
	migrated bool
}

// NewStore constructs a Store on an existing pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, now: time.Now}
}

// Open connects to databaseURL and verifies the connection.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, apperrors.NewStorageError("connect postgres", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperrors.NewStorageError("ping postgres", err)
	}
	return NewStore(pool), nil
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Migrate creates the event table when missing.
func (s *Store) Migrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.migrated {
		return nil
	}
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return apperrors.NewStorageError("create activity_events", err)
	}
	s.migrated = true
	return nil
}

func (s *Store) Record(ctx context.Context, activity domain.Activity) error {
	if err := s.Migrate(ctx); err != nil {
		return err
	}

	record := eventstore.EncodeActivity(activity)
	const insert = `INSERT INTO activity_events (id, recorded_at, occurred_at, duration, client, project, task, notes, category)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	_, err := s.pool.Exec(ctx, insert,
		uuid.NewString(),
		s.now().UTC(),
		record[eventstore.FieldTimestamp],
		record[eventstore.FieldDuration],
		activity.Client,
		activity.Project,
		activity.Task,
		nullIfEmpty(activity.Notes),
		nullIfEmpty(activity.Category),
	)
	if err != nil {
		return apperrors.NewStorageError("append activity", err)
	}
	return nil
}

func (s *Store) Replay(ctx context.Context) iter.Seq2[eventstore.Record, error] {
	return func(yield func(eventstore.Record, error) bool) {
		const query = `SELECT occurred_at, duration, client, project, task, notes, category
        FROM activity_events ORDER BY sequence ASC`

		rows, err := s.pool.Query(ctx, query)
		if err != nil {
			if !isUndefinedTable(err) {
				yield(nil, apperrors.NewStorageError("query activity events", err))
			}
			return
		}
		defer rows.Close()

		for rows.Next() {
			var timestamp, duration, client, project, task string
			var notes, category *string
			if err := rows.Scan(&timestamp, &duration, &client, &project, &task, &notes, &category); err != nil {
				yield(nil, apperrors.NewStorageError("scan activity event", err))
				return
			}

			record := eventstore.Record{
				eventstore.FieldTimestamp: timestamp,
				eventstore.FieldDuration:  duration,
				eventstore.FieldClient:    client,
				eventstore.FieldProject:   project,
				eventstore.FieldTask:      task,
			}
			if notes != nil && *notes != "" {
				record[eventstore.FieldNotes] = *notes
			}
			if category != nil && *category != "" {
				record[eventstore.FieldCategory] = *category
			}
			if !yield(record, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil && !isUndefinedTable(err) {
			yield(nil, apperrors.NewStorageError("iterate activity events", err))
		}
	}
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTable
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
