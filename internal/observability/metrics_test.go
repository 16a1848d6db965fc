package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/errors"
)

func TestRecordActivity(t *testing.T) {
	beforeCount := testutil.ToFloat64(activitiesRecordedCounter)
	beforeSeconds := testutil.ToFloat64(recordedSecondsCounter)
	timestamp := time.Date(2025, time.August, 29, 8, 47, 0, 0, time.UTC)

	err := RecordActivity(context.Background(), domain.Activity{
		DateTime: timestamp,
		Duration: 30 * time.Minute,
		Task:     "Do something",
	})

	require.NoError(t, err)
	assert.Equal(t, beforeCount+1, testutil.ToFloat64(activitiesRecordedCounter))
	assert.Equal(t, beforeSeconds+1800, testutil.ToFloat64(recordedSecondsCounter))
	assert.Equal(t, float64(timestamp.Unix()), testutil.ToFloat64(lastActivityGauge))
}

func TestObserveQuery(t *testing.T) {
	t.Run("should count errors by type", func(t *testing.T) {
		counter := queryErrorCounter.WithLabelValues("report", "validation")
		before := testutil.ToFloat64(counter)

		ObserveQuery("report", time.Now(), errors.NewValidationError("activity record 0 is invalid", nil))

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})

	t.Run("should label foreign errors as unknown", func(t *testing.T) {
		counter := queryErrorCounter.WithLabelValues("estimate", "unknown")
		before := testutil.ToFloat64(counter)

		ObserveQuery("estimate", time.Now(), fmt.Errorf("boom"))

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})

	t.Run("should observe latency without counting success as error", func(t *testing.T) {
		before := testutil.CollectAndCount(queryErrorCounter)

		ObserveQuery("burn-up", time.Now(), nil)

		assert.Equal(t, before, testutil.CollectAndCount(queryErrorCounter))
		assert.GreaterOrEqual(t, testutil.CollectAndCount(queryDuration), 1)
	})
}
