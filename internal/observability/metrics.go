package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/errors"
)

const namespace = "activity_sampler"

var (
	activitiesRecordedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "eventstore",
		Name:      "activities_recorded_total",
		Help:      "Number of activities appended to the event log.",
	})
	recordedSecondsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "eventstore",
		Name:      "recorded_duration_seconds_total",
		Help:      "Sum of the durations of all recorded activities.",
	})
	lastActivityGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "eventstore",
		Name:      "last_activity_timestamp_seconds",
		Help:      "Unix timestamp of the most recently recorded activity.",
	})

	queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "projection",
		Name:      "query_duration_seconds",
		Help:      "Time spent replaying the log and projecting one query.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"query"})
	queryErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "projection",
		Name:      "query_errors_total",
		Help:      "Number of failed queries grouped by query and error type.",
	}, []string{"query", "error_type"})
)

func init() {
	prometheus.MustRegister(
		activitiesRecordedCounter,
		recordedSecondsCounter,
		lastActivityGauge,
		queryDuration,
		queryErrorCounter,
	)
}

// RecordActivity updates the event log counters. It matches the
// eventstore.Listener signature.
func RecordActivity(_ context.Context, activity domain.Activity) error {
	activitiesRecordedCounter.Inc()
	recordedSecondsCounter.Add(activity.Duration.Seconds())
	if !activity.DateTime.IsZero() {
		lastActivityGauge.Set(float64(activity.DateTime.Unix()))
	}
	return nil
}

// ObserveQuery records the latency of query since start and counts err.
func ObserveQuery(query string, start time.Time, err error) {
	queryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	if err == nil {
		return
	}
	errorType := "unknown"
	if appErr, ok := errors.AsAppError(err); ok {
		errorType = appErr.Type.String()
	}
	queryErrorCounter.WithLabelValues(query, errorType).Inc()
}
