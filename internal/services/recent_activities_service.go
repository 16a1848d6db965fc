package services

import (
	"context"
	"slices"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
)

// RecentWindowDays is the length of the trailing window, today included.
const RecentWindowDays = 30

// recentActivitiesServiceImpl implements the RecentActivitiesService interface
type recentActivitiesServiceImpl struct {
	replayer
}

// NewRecentActivitiesService creates a new RecentActivitiesService instance
func NewRecentActivitiesService(store eventstore.EventStore, clock domain.Clock, logger logging.Logger) RecentActivitiesService {
	return &recentActivitiesServiceImpl{replayer: newReplayer(store, clock, logger)}
}

// Query groups the last 30 days by date, newest day and activity first, and
// sums today, yesterday, this week and this month over the whole log
func (s *recentActivitiesServiceImpl) Query(ctx context.Context, query RecentActivitiesQuery) (*RecentActivitiesResult, error) {
	loc := s.zone(query.TimeZone)
	today := s.today(query.Today, loc)

	activities, err := s.activities(ctx, loc)
	if err != nil {
		return nil, err
	}

	windowStart := today.AddDays(-(RecentWindowDays - 1))
	yesterday := today.AddDays(-1)
	week := domain.InitPeriod(domain.PeriodWeek, today)
	month := domain.InitPeriod(domain.PeriodMonth, today)

	byDate := make(map[domain.Date][]domain.Activity)
	var summary TimeSummary
	for _, activity := range activities {
		date := activity.Date()
		if date.Between(windowStart, today) {
			byDate[date] = append(byDate[date], activity)
		}

		switch date {
		case today:
			summary.HoursToday += activity.Duration
		case yesterday:
			summary.HoursYesterday += activity.Duration
		}
		if week.Contains(date) {
			summary.HoursThisWeek += activity.Duration
		}
		if month.Contains(date) {
			summary.HoursThisMonth += activity.Duration
		}
	}

	workingDays := make([]WorkingDay, 0, len(byDate))
	for date, dayActivities := range byDate {
		slices.SortStableFunc(dayActivities, func(a, b domain.Activity) int {
			return b.DateTime.Compare(a.DateTime)
		})
		workingDays = append(workingDays, WorkingDay{Date: date, Activities: dayActivities})
	}
	slices.SortFunc(workingDays, func(a, b WorkingDay) int {
		return b.Date.Compare(a.Date)
	})

	return &RecentActivitiesResult{
		WorkingDays: workingDays,
		TimeSummary: summary,
	}, nil
}
