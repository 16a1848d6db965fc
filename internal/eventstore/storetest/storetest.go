// Package storetest holds the behavior every EventStore implementation must
// share, run from each implementation's tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a store whose backing storage does not exist yet.
type Factory func(t *testing.T) eventstore.EventStore

// Activities returns three activities in append order.
func Activities() []domain.Activity {
	return []domain.Activity{
		{
			DateTime: time.Date(2025, 8, 28, 8, 0, 0, 0, time.UTC),
			Duration: 30 * time.Minute,
			Client:   "ACME Ltd.",
			Project:  "Foobar",
			Task:     "Write specs",
			Category: "Feature",
		},
		{
			DateTime: time.Date(2025, 8, 29, 6, 47, 0, 0, time.UTC),
			Duration: time.Hour,
			Client:   "ACME Ltd.",
			Project:  "Foobar",
			Task:     "Fix build",
			Notes:    "pipeline was red, again",
		},
		{
			DateTime: time.Date(2025, 8, 29, 7, 17, 0, 0, time.UTC),
			Duration: 90*time.Minute + 15*time.Second,
			Client:   "Globex",
			Project:  "Hammock",
			Task:     "Review \"quoted\" notes",
			Category: "Rework",
		},
	}
}

// Collect drains a replay, failing the test on the first error.
func Collect(t *testing.T, store eventstore.EventStore) []eventstore.Record {
	t.Helper()
	var records []eventstore.Record
	for record, err := range store.Replay(context.Background()) {
		require.NoError(t, err)
		records = append(records, record)
	}
	return records
}

// Run exercises the EventStore contract.
func Run(t *testing.T, newStore Factory) {
	t.Run("should replay nothing when storage is absent", func(t *testing.T) {
		store := newStore(t)
		defer eventstore.Close(store)

		assert.Empty(t, Collect(t, store))
	})

	t.Run("should replay records oldest first", func(t *testing.T) {
		store := newStore(t)
		defer eventstore.Close(store)
		ctx := context.Background()

		for _, activity := range Activities() {
			require.NoError(t, store.Record(ctx, activity))
		}

		records := Collect(t, store)
		require.Len(t, records, 3)
		for i, activity := range Activities() {
			assert.Equal(t, eventstore.EncodeActivity(activity), records[i])
		}
	})

	t.Run("should restart replay from the beginning", func(t *testing.T) {
		store := newStore(t)
		defer eventstore.Close(store)

		for _, activity := range Activities() {
			require.NoError(t, store.Record(context.Background(), activity))
		}

		assert.Equal(t, Collect(t, store), Collect(t, store))
	})

	t.Run("should stop when the consumer stops", func(t *testing.T) {
		store := newStore(t)
		defer eventstore.Close(store)

		for _, activity := range Activities() {
			require.NoError(t, store.Record(context.Background(), activity))
		}

		count := 0
		for _, err := range store.Replay(context.Background()) {
			require.NoError(t, err)
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}
