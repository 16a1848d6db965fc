package cli

import (
	"bytes"
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"activity-sampler/internal/api"
	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is a Friday.
var testNow = time.Date(2025, time.August, 29, 9, 42, 0, 0, time.UTC)

func activityAt(timestamp string, duration time.Duration, task, category string) domain.Activity {
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

// weekActivities spreads two tasks over the week of 2025-08-25.
func weekActivities() []domain.Activity {
	return []domain.Activity{
		activityAt("2025-08-25T10:00:00Z", 2*time.Hour, "Task A", "Feature"),
		activityAt("2025-08-26T14:30:00Z", 90*time.Minute, "Task B", ""),
		activityAt("2025-08-28T16:00:00Z", 3*time.Hour, "Task A", "Feature"),
	}
}

func newTestBackend(t *testing.T, activities ...domain.Activity) (*Backend, *eventstore.MemoryStore) {
	t.Helper()
	store := eventstore.NewMemoryStore()
	for _, activity := range activities {
		require.NoError(t, store.Record(context.Background(), activity))
	}
	clock := domain.NewFixedClock(testNow, time.UTC)
	return &Backend{
		API:   api.New(store, clock, services.Capacity{Weekly: 40 * time.Hour}, nil),
		Clock: clock,
	}, store
}

func setupTestApp(t *testing.T, activities ...domain.Activity) (*App, *bytes.Buffer, *eventstore.MemoryStore) {
	t.Helper()
	backend, store := newTestBackend(t, activities...)
	out := &bytes.Buffer{}
	return NewApp(backend, out), out, store
}

func TestParseActivityDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "should parse ISO duration", input: "PT1H30M", expected: 90 * time.Minute},
		{name: "should parse lower case ISO duration", input: "pt30m", expected: 30 * time.Minute},
		{name: "should parse Go shorthand", input: "1h15m", expected: 75 * time.Minute},
		{name: "should accept zero", input: "0s", expected: 0},
		{name: "should reject negative shorthand", input: "-30m", wantErr: true},
		{name: "should reject negative ISO duration", input: "-PT30M", wantErr: true},
		{name: "should reject garbage", input: "half an hour", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseActivityDuration(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "should return zero time for empty input", input: "", expected: time.Time{}},
		{
			name:     "should parse RFC 3339",
			input:    "2025-08-28T10:00:00Z",
			expected: time.Date(2025, time.August, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "should parse wall time in location",
			input:    "2025-08-28 10:00",
			expected: time.Date(2025, time.August, 28, 10, 0, 0, 0, berlin),
		},
		{name: "should reject garbage", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimestamp(tt.input, berlin)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}
