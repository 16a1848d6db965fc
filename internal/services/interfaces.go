package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"activity-sampler/internal/domain"
)

// RecentActivitiesQuery selects the trailing 30-day window ending at Today.
// Zero values fall back to the clock.
type RecentActivitiesQuery struct {
	Today    domain.Date
	TimeZone *time.Location
}

// WorkingDay is one day of activities, most recent first.
type WorkingDay struct {
	Date       domain.Date
	Activities []domain.Activity
}

// TimeSummary holds four independently windowed sums of logged time.
type TimeSummary struct {
	HoursToday     time.Duration
	HoursYesterday time.Duration
	HoursThisWeek  time.Duration
	HoursThisMonth time.Duration
}

// RecentActivitiesResult is the recent activities read model.
type RecentActivitiesResult struct {
	WorkingDays []WorkingDay
	TimeSummary TimeSummary
}

// ReportScope selects the grouping key of a report.
type ReportScope int

const (
	ReportScopeClients ReportScope = iota
	ReportScopeProjects
	ReportScopeTasks
	ReportScopeCategories
)

var reportScopeNames = []string{"clients", "projects", "tasks", "categories"}

func (s ReportScope) String() string {
	if int(s) >= 0 && int(s) < len(reportScopeNames) {
		return reportScopeNames[s]
	}
	return "unknown"
}

// ParseReportScope accepts clients, projects, tasks or categories.
func ParseReportScope(s string) (ReportScope, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for i, name := range reportScopeNames {
		if name == normalized {
			return ReportScope(i), nil
		}
	}
	return 0, fmt.Errorf("unknown report scope %q, expected one of %s", s, strings.Join(reportScopeNames, ", "))
}

// ReportQuery selects activities in [From, To]. Zero bounds default to the
// current month.
type ReportQuery struct {
	From     domain.Date
	To       domain.Date
	Scope    ReportScope
	TimeZone *time.Location
}

// ReportEntry is one group of a report. Secondary fields list every distinct
// associated value, sorted and joined with ", ".
type ReportEntry struct {
	Client    string
	Project   string
	Task      string
	Category  string
	Hours     time.Duration
	Start     domain.Date
	Finish    domain.Date
	CycleTime int
}

// ReportResult is the report read model.
type ReportResult struct {
	From       domain.Date
	To         domain.Date
	Scope      ReportScope
	Entries    []ReportEntry
	TotalHours time.Duration
}

// TimesheetQuery selects activities in [From, To]. Zero bounds default to
// the current month.
type TimesheetQuery struct {
	From     domain.Date
	To       domain.Date
	TimeZone *time.Location
}

// TimesheetEntry sums one (date, client, project, task) combination.
type TimesheetEntry struct {
	Date    domain.Date
	Client  string
	Project string
	Task    string
	Hours   time.Duration
}

// TimesheetResult is the timesheet read model. Offset is TotalHours minus
// Capacity: positive means ahead of schedule.
type TimesheetResult struct {
	From       domain.Date
	To         domain.Date
	Entries    []TimesheetEntry
	TotalHours time.Duration
	Capacity   time.Duration
	Offset     time.Duration
}

// StatisticsScope selects the sample of a statistics query.
type StatisticsScope int

const (
	StatisticsScopeWorkingHours StatisticsScope = iota
	StatisticsScopeCycleTimes
)

func (s StatisticsScope) String() string {
	switch s {
	case StatisticsScopeWorkingHours:
		return "working-hours"
	case StatisticsScopeCycleTimes:
		return "cycle-times"
	default:
		return "unknown"
	}
}

// ParseStatisticsScope accepts working-hours or cycle-times.
func ParseStatisticsScope(s string) (StatisticsScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "working-hours", "workinghours":
		return StatisticsScopeWorkingHours, nil
	case "cycle-times", "cycletimes":
		return StatisticsScopeCycleTimes, nil
	default:
		return 0, fmt.Errorf("unknown statistics scope %q, expected working-hours or cycle-times", s)
	}
}

// StatisticsQuery selects the sample. A nil or empty Categories applies no
// filter; "" matches activities without a category.
type StatisticsQuery struct {
	Scope      StatisticsScope
	Categories []string
	TimeZone   *time.Location
}

// Histogram has one frequency per pair of adjacent bin edges.
type Histogram struct {
	BinEdges    []string
	Frequencies []int
	XAxisLabel  string
	YAxisLabel  string
}

// Median is a five-number summary.
type Median struct {
	Edge0   float64
	Edge25  float64
	Edge50  float64
	Edge75  float64
	Edge100 float64
}

// StatisticsResult is the statistics read model. Categories always lists
// every category of the log.
type StatisticsResult struct {
	Histogram  Histogram
	Median     Median
	Categories []string
	TotalCount int
}

// EstimateQuery selects the tasks to estimate from.
type EstimateQuery struct {
	Categories []string
	TimeZone   *time.Location
}

// EstimateEntry is the share of tasks finished within CycleTime days.
type EstimateEntry struct {
	CycleTime             int
	Frequency             int
	Probability           float64
	CumulativeProbability float64
}

// EstimateResult is the estimate read model, ordered by cycle time.
type EstimateResult struct {
	CycleTimes []EstimateEntry
	TotalCount int
	Categories []string
}

// BurnUpQuery selects the days of a burn-up chart. Zero bounds default to
// the current month.
type BurnUpQuery struct {
	From       domain.Date
	To         domain.Date
	Categories []string
	TimeZone   *time.Location
}

// BurnUpEntry counts the tasks finished on Date.
type BurnUpEntry struct {
	Date                 domain.Date
	Throughput           int
	CumulativeThroughput int
}

// BurnUpResult is the burn-up read model.
type BurnUpResult struct {
	From            domain.Date
	To              domain.Date
	Entries         []BurnUpEntry
	TotalThroughput int
	Categories      []string
}

// RecentActivitiesService projects the last 30 days of activity
type RecentActivitiesService interface {
	Query(ctx context.Context, query RecentActivitiesQuery) (*RecentActivitiesResult, error)
}

// ReportService groups activities of a period by client, project, task or category
type ReportService interface {
	Query(ctx context.Context, query ReportQuery) (*ReportResult, error)
}

// TimesheetService sums activities per day and compares them with capacity
type TimesheetService interface {
	Query(ctx context.Context, query TimesheetQuery) (*TimesheetResult, error)
}

// StatisticsService computes histograms and medians of effort or cycle time
type StatisticsService interface {
	Query(ctx context.Context, query StatisticsQuery) (*StatisticsResult, error)
}

// EstimateService derives the cycle time distribution of tasks
type EstimateService interface {
	Query(ctx context.Context, query EstimateQuery) (*EstimateResult, error)
}

// BurnUpService counts finished tasks per day
type BurnUpService interface {
	Query(ctx context.Context, query BurnUpQuery) (*BurnUpResult, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	RecentActivities RecentActivitiesService
	Report           ReportService
	Timesheet        TimesheetService
	Statistics       StatisticsService
	Estimate         EstimateService
	BurnUp           BurnUpService
}
