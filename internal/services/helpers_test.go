package services

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"

	"github.com/stretchr/testify/require"
)

// activityAt builds an activity with sensible defaults for the fields a test
// does not care about.
func activityAt(timestamp string, duration time.Duration, task string, category string) domain.Activity {
	dateTime, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		panic(err)
	}
	return domain.Activity{
		DateTime: dateTime,
		Duration: duration,
		Client:   "ACME Ltd.",
		Project:  "Foobar",
		Task:     task,
		Category: category,
	}
}

func newStore(t *testing.T, activities ...domain.Activity) *eventstore.MemoryStore {
	t.Helper()
	store := eventstore.NewMemoryStore()
	for _, activity := range activities {
		require.NoError(t, store.Record(context.Background(), activity))
	}
	return store
}

func fixedClock(t *testing.T, instant string, zone string) *domain.FixedClock {
	t.Helper()
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)
	now, err := time.Parse(time.RFC3339, instant)
	require.NoError(t, err)
	return domain.NewFixedClock(now, loc)
}

func date(s string) domain.Date {
	return domain.MustParseDate(s)
}

func malformedStore() *eventstore.MemoryStore {
	return eventstore.NewMemoryStore(eventstore.Record{
		"timestamp": "invalid-timestamp",
		"duration":  "PT30M",
		"client":    "ACME Ltd.",
		"project":   "Foobar",
		"task":      "Do something",
	})
}
