package services

import (
	"context"
	"math"
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
)

// DefaultWeeklyCapacity is the working time expected per week.
const DefaultWeeklyCapacity = 40 * time.Hour

// WorkingDaysPerWeek spreads weekly capacity over Monday to Friday.
const WorkingDaysPerWeek = 5

// Capacity is the expected working time used by timesheets.
type Capacity struct {
	Weekly   time.Duration
	Holidays []domain.Date
}

// Daily returns the capacity of one working day.
func (c Capacity) Daily() time.Duration {
	return c.Weekly / WorkingDaysPerWeek
}

// Between returns the capacity of [from, to]: one daily share per Monday to
// Friday, minus one share per holiday falling on such a day. Capacities
// beyond the range of time.Duration saturate.
func (c Capacity) Between(from, to domain.Date) time.Duration {
	days := countWeekdays(from, to)
	seen := make(map[domain.Date]bool, len(c.Holidays))
	for _, holiday := range c.Holidays {
		if seen[holiday] || !holiday.IsWeekday() || !holiday.Between(from, to) {
			continue
		}
		seen[holiday] = true
		days--
	}
	daily := c.Daily()
	if days <= 0 || daily <= 0 {
		return 0
	}
	if int64(days) > math.MaxInt64/int64(daily) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(days) * daily
}

// countWeekdays counts Mondays to Fridays in [from, to].
func countWeekdays(from, to domain.Date) int {
	if to.Before(from) {
		return 0
	}
	total := to.DaysSince(from) + 1
	count := total / 7 * WorkingDaysPerWeek
	day := from.AddDays(total / 7 * 7)
	for ; !day.After(to); day = day.AddDays(1) {
		if day.IsWeekday() {
			count++
		}
	}
	return count
}

// timesheetServiceImpl implements the TimesheetService interface
type timesheetServiceImpl struct {
	replayer
	capacity Capacity
}

// NewTimesheetService creates a new TimesheetService instance. A zero weekly
// capacity falls back to DefaultWeeklyCapacity.
func NewTimesheetService(store eventstore.EventStore, clock domain.Clock, capacity Capacity, logger logging.Logger) TimesheetService {
	if capacity.Weekly == 0 {
		capacity.Weekly = DefaultWeeklyCapacity
	}
	return &timesheetServiceImpl{replayer: newReplayer(store, clock, logger), capacity: capacity}
}

type timesheetKey struct {
	date    domain.Date
	client  string
	project string
	task    string
}

// Query sums activities of [From, To] per day, client, project and task
func (s *timesheetServiceImpl) Query(ctx context.Context, query TimesheetQuery) (*TimesheetResult, error) {
	loc := s.zone(query.TimeZone)
	from, to := s.bounds(query.From, query.To, loc)
	if err := checkRange(from, to); err != nil {
		return nil, err
	}

	activities, err := s.activities(ctx, loc)
	if err != nil {
		return nil, err
	}

	if from == domain.AllTimeFrom || to == domain.AllTimeTo {
		first, last, ok := loggedSpan(activities)
		if !ok {
			return &TimesheetResult{From: from, To: to, Entries: make([]TimesheetEntry, 0)}, nil
		}
		from, to = narrowAllTime(from, to, first, last)
	}

	index := make(map[timesheetKey]int)
	result := &TimesheetResult{From: from, To: to, Entries: make([]TimesheetEntry, 0)}
	for _, activity := range sortedChronologically(inRange(activities, from, to)) {
		key := timesheetKey{
			date:    activity.Date(),
			client:  activity.Client,
			project: activity.Project,
			task:    activity.Task,
		}
		i, ok := index[key]
		if !ok {
			i = len(result.Entries)
			index[key] = i
			result.Entries = append(result.Entries, TimesheetEntry{
				Date:    key.date,
				Client:  key.client,
				Project: key.project,
				Task:    key.task,
			})
		}
		result.Entries[i].Hours += activity.Duration
		result.TotalHours += activity.Duration
	}

	result.Capacity = s.capacity.Between(from, to)
	result.Offset = result.TotalHours - result.Capacity
	return result, nil
}

// loggedSpan returns the first and last day with an activity.
func loggedSpan(activities []domain.Activity) (domain.Date, domain.Date, bool) {
	if len(activities) == 0 {
		return domain.Date{}, domain.Date{}, false
	}
	first, last := activities[0].Date(), activities[0].Date()
	for _, activity := range activities[1:] {
		day := activity.Date()
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}
	return first, last, true
}

// narrowAllTime replaces all-time sentinels by the given span.
func narrowAllTime(from, to, first, last domain.Date) (domain.Date, domain.Date) {
	if from == domain.AllTimeFrom {
		from = first
	}
	if to == domain.AllTimeTo {
		to = last
	}
	return from, to
}
