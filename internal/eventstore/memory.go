package eventstore

import (
	"context"
	"iter"
	"maps"
	"sync"

	"activity-sampler/internal/domain"
)

// MemoryStore keeps the log in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryStore creates a store seeded with raw records. Seeds are not
// validated so tests can replay malformed history.
func NewMemoryStore(seed ...Record) *MemoryStore {
	store := &MemoryStore{}
	for _, record := range seed {
		store.records = append(store.records, maps.Clone(record))
	}
	return store
}

func (s *MemoryStore) Record(_ context.Context, activity domain.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, EncodeActivity(activity))
	return nil
}

func (s *MemoryStore) Replay(_ context.Context) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		s.mu.Lock()
		snapshot := append([]Record(nil), s.records...)
		s.mu.Unlock()

		for _, record := range snapshot {
			if !yield(maps.Clone(record), nil) {
				return
			}
		}
	}
}

// Len returns the number of recorded events.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
