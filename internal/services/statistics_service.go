package services

import (
	"context"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
)

// statisticsServiceImpl implements the StatisticsService interface
type statisticsServiceImpl struct {
	replayer
}

// NewStatisticsService creates a new StatisticsService instance
func NewStatisticsService(store eventstore.EventStore, clock domain.Clock, logger logging.Logger) StatisticsService {
	return &statisticsServiceImpl{replayer: newReplayer(store, clock, logger)}
}

// Query bins either the person-days of every activity or the cycle time of
// every task
func (s *statisticsServiceImpl) Query(ctx context.Context, query StatisticsQuery) (*StatisticsResult, error) {
	activities, err := s.activities(ctx, s.zone(query.TimeZone))
	if err != nil {
		return nil, err
	}

	filter := newCategoryFilter(query.Categories)
	var samples []float64
	var edges []float64
	var hist Histogram

	switch query.Scope {
	case StatisticsScopeCycleTimes:
		for _, t := range filter.tasks(joinTasks(activities)) {
			samples = append(samples, float64(t.CycleTime()))
		}
		edges = CycleTimeBinEdges
		hist.XAxisLabel = "Cycle time (days)"
		hist.YAxisLabel = "Number of tasks"
	default:
		for _, activity := range filter.activities(activities) {
			samples = append(samples, activity.PersonDays())
		}
		edges = WorkingHoursBinEdges
		hist.XAxisLabel = "Duration (days)"
		hist.YAxisLabel = "Number of activities"
	}

	binned := histogram(samples, edges)
	hist.BinEdges = binned.BinEdges
	hist.Frequencies = binned.Frequencies

	return &StatisticsResult{
		Histogram:  hist,
		Median:     fiveNumberSummary(samples),
		Categories: distinctCategories(activities),
		TotalCount: len(samples),
	}, nil
}
