package eventstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"activity-sampler/internal/domain"
	apperrors "activity-sampler/internal/errors"
)

// CSVHeader is the column layout of the CSV log.
var CSVHeader = []string{"Timestamp", "Duration", "Client", "Project", "Task", "Notes", "Category"}

// CSVStore appends events to a CSV file, one row per event.
type CSVStore struct {
	path string
}

// NewCSVStore creates a store at path. The file is created on first Record.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the file location of the log.
func (s *CSVStore) Path() string {
	return s.path
}

func (s *CSVStore) Record(_ context.Context, activity domain.Activity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperrors.NewStorageError("create log directory", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperrors.NewStorageError("open activity log", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return apperrors.NewStorageError("stat activity log", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(CSVHeader); err != nil {
			return apperrors.NewStorageError("write log header", err)
		}
	}

	record := EncodeActivity(activity)
	row := make([]string, len(CSVHeader))
	for i, column := range CSVHeader {
		row[i] = stringField(record, strings.ToLower(column))
	}
	if err := w.Write(row); err != nil {
		return apperrors.NewStorageError("append activity", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return apperrors.NewStorageError("append activity", err)
	}
	return nil
}

func (s *CSVStore) Replay(_ context.Context) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		f, err := os.Open(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		if err != nil {
			yield(nil, apperrors.NewStorageError("open activity log", err))
			return
		}
		defer f.Close()

		r := csv.NewReader(f)
		header, err := r.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			yield(nil, apperrors.NewStorageError("read log header", err))
			return
		}

		keys := make([]string, len(header))
		for i, column := range header {
			keys[i] = strings.ToLower(strings.TrimSpace(column))
		}

		for line := 2; ; line++ {
			row, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, apperrors.NewStorageError(fmt.Sprintf("read log line %d", line), err))
				return
			}
			if !yield(rowToRecord(keys, row), nil) {
				return
			}
		}
	}
}

// rowToRecord maps a CSV row onto record keys. Empty optional cells are
// omitted; empty required cells are kept so decoding reports them.
func rowToRecord(keys []string, row []string) Record {
	record := make(Record, len(keys))
	for i, key := range keys {
		value := row[i]
		if value == "" && (key == FieldNotes || key == FieldCategory) {
			continue
		}
		record[key] = value
	}
	return record
}
