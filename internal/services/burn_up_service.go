package services

import (
	"context"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
)

// burnUpServiceImpl implements the BurnUpService interface
type burnUpServiceImpl struct {
	replayer
}

// NewBurnUpService creates a new BurnUpService instance
func NewBurnUpService(store eventstore.EventStore, clock domain.Clock, logger logging.Logger) BurnUpService {
	return &burnUpServiceImpl{replayer: newReplayer(store, clock, logger)}
}

// Query counts, per day of [From, To], the tasks whose last occurrence
// falls on that day.
func (s *burnUpServiceImpl) Query(ctx context.Context, query BurnUpQuery) (*BurnUpResult, error) {
	loc := s.zone(query.TimeZone)
	from, to := s.bounds(query.From, query.To, loc)
	if err := checkRange(from, to); err != nil {
		return nil, err
	}

	activities, err := s.activities(ctx, loc)
	if err != nil {
		return nil, err
	}

	tasks := newCategoryFilter(query.Categories).tasks(joinTasks(activities))

	finished := make(map[domain.Date]int)
	for _, t := range tasks {
		finished[t.Last]++
	}

	result := &BurnUpResult{
		From:       from,
		To:         to,
		Entries:    make([]BurnUpEntry, 0),
		Categories: distinctCategories(activities),
	}
	start, end, ok := chartSpan(from, to, tasks)
	if !ok {
		return result, nil
	}

	cumulative := 0
	for day := start; !day.After(end); day = day.AddDays(1) {
		throughput := finished[day]
		cumulative += throughput
		result.Entries = append(result.Entries, BurnUpEntry{
			Date:                 day,
			Throughput:           throughput,
			CumulativeThroughput: cumulative,
		})
	}
	result.TotalThroughput = cumulative
	return result, nil
}

// chartSpan returns the days to chart. All-time sentinels narrow to the
// span of the selected tasks; ok is false when no day is left.
func chartSpan(from, to domain.Date, tasks []*task) (domain.Date, domain.Date, bool) {
	if from == domain.AllTimeFrom || to == domain.AllTimeTo {
		if len(tasks) == 0 {
			return from, to, false
		}
		first, last := tasks[0].First, tasks[0].Last
		for _, t := range tasks[1:] {
			if t.First.Before(first) {
				first = t.First
			}
			if t.Last.After(last) {
				last = t.Last
			}
		}
		from, to = narrowAllTime(from, to, first, last)
	}
	return from, to, !to.Before(from)
}
