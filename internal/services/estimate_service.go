package services

import (
	"context"
	"slices"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
)

// estimateServiceImpl implements the EstimateService interface
type estimateServiceImpl struct {
	replayer
}

// NewEstimateService creates a new EstimateService instance
func NewEstimateService(store eventstore.EventStore, clock domain.Clock, logger logging.Logger) EstimateService {
	return &estimateServiceImpl{replayer: newReplayer(store, clock, logger)}
}

// Query derives how likely a task is to finish within a number of days
func (s *estimateServiceImpl) Query(ctx context.Context, query EstimateQuery) (*EstimateResult, error) {
	activities, err := s.activities(ctx, s.zone(query.TimeZone))
	if err != nil {
		return nil, err
	}

	tasks := newCategoryFilter(query.Categories).tasks(joinTasks(activities))
	frequencies := make(map[int]int)
	for _, t := range tasks {
		frequencies[t.CycleTime()]++
	}

	cycleTimes := make([]int, 0, len(frequencies))
	for cycleTime := range frequencies {
		cycleTimes = append(cycleTimes, cycleTime)
	}
	slices.Sort(cycleTimes)

	total := len(tasks)
	entries := make([]EstimateEntry, 0, len(cycleTimes))
	cumulative := 0
	for _, cycleTime := range cycleTimes {
		frequency := frequencies[cycleTime]
		cumulative += frequency
		entries = append(entries, EstimateEntry{
			CycleTime:             cycleTime,
			Frequency:             frequency,
			Probability:           float64(frequency) / float64(total),
			CumulativeProbability: float64(cumulative) / float64(total),
		})
	}

	return &EstimateResult{
		CycleTimes: entries,
		TotalCount: total,
		Categories: distinctCategories(activities),
	}, nil
}
