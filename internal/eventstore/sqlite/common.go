package sqlite

import (
	"context"
	"database/sql"
	"iter"

	"activity-sampler/internal/errors"
)

// HandleStorageError converts database errors to structured app errors
func HandleStorageError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db *sql.DB, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleStorageError("execute query", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleStorageError("get last insert ID", err)
	}

	return id, nil
}

// QuerySeq runs query and yields one scanned value per row. The first
// failure is yielded as a storage error and ends the sequence.
func QuerySeq[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), entityType string, args ...interface{}) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(nil, HandleStorageError("query "+entityType, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			value, err := scanFunc(rows)
			if err != nil {
				yield(nil, HandleStorageError("scan "+entityType, err))
				return
			}
			if !yield(value, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, HandleStorageError("iterate "+entityType, err))
		}
	}
}
