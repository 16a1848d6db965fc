package services

import (
	"context"
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
)

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	replayer
}

// NewReportService creates a new ReportService instance
func NewReportService(store eventstore.EventStore, clock domain.Clock, logger logging.Logger) ReportService {
	return &reportServiceImpl{replayer: newReplayer(store, clock, logger)}
}

type reportGroup struct {
	key        string
	clients    distinctJoined
	projects   distinctJoined
	categories distinctJoined
	hours      time.Duration
	start      domain.Date
	finish     domain.Date
}

// Query groups the activities of [From, To] by the query scope
func (s *reportServiceImpl) Query(ctx context.Context, query ReportQuery) (*ReportResult, error) {
	loc := s.zone(query.TimeZone)
	from, to := s.bounds(query.From, query.To, loc)
	if err := checkRange(from, to); err != nil {
		return nil, err
	}

	activities, err := s.activities(ctx, loc)
	if err != nil {
		return nil, err
	}

	index := make(map[string]*reportGroup)
	var groups []*reportGroup
	for _, activity := range sortedChronologically(inRange(activities, from, to)) {
		key := reportKey(query.Scope, activity)
		group, ok := index[key]
		if !ok {
			group = &reportGroup{key: key, start: activity.Date(), finish: activity.Date()}
			index[key] = group
			groups = append(groups, group)
		}

		group.clients.add(activity.Client)
		group.projects.add(activity.Project)
		group.categories.add(activity.Category)
		group.hours += activity.Duration
		group.finish = activity.Date()
	}

	result := &ReportResult{From: from, To: to, Scope: query.Scope, Entries: make([]ReportEntry, 0, len(groups))}
	for _, group := range groups {
		entry := group.entry(query.Scope)
		result.Entries = append(result.Entries, entry)
		result.TotalHours += entry.Hours
	}
	return result, nil
}

func reportKey(scope ReportScope, activity domain.Activity) string {
	switch scope {
	case ReportScopeProjects:
		return activity.Project
	case ReportScopeTasks:
		return activity.Task
	case ReportScopeCategories:
		return activity.Category
	default:
		return activity.Client
	}
}

func (g *reportGroup) entry(scope ReportScope) ReportEntry {
	entry := ReportEntry{
		Hours:     g.hours,
		Start:     g.start,
		Finish:    g.finish,
		CycleTime: g.finish.DaysSince(g.start),
	}
	switch scope {
	case ReportScopeClients:
		entry.Client = g.key
	case ReportScopeProjects:
		entry.Project = g.key
		entry.Client = g.clients.String()
	case ReportScopeTasks:
		entry.Task = g.key
		entry.Project = g.projects.String()
		entry.Client = g.clients.String()
		entry.Category = g.categories.String()
	case ReportScopeCategories:
		entry.Category = g.key
	}
	return entry
}
