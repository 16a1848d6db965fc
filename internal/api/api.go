package api

import (
	"context"
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/errors"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
	"activity-sampler/internal/observability"
	"activity-sampler/internal/services"
	"activity-sampler/internal/validation"
)

// API defines every operation of the activity sampler: logging activities
// and querying the projections of the log.
type API interface {
	// LogActivity appends one activity to the log
	LogActivity(ctx context.Context, cmd LogActivityCommand) (*domain.Activity, error)

	// Query operations
	RecentActivities(ctx context.Context, query services.RecentActivitiesQuery) (*services.RecentActivitiesResult, error)
	Report(ctx context.Context, query services.ReportQuery) (*services.ReportResult, error)
	Timesheet(ctx context.Context, query services.TimesheetQuery) (*services.TimesheetResult, error)
	Statistics(ctx context.Context, query services.StatisticsQuery) (*services.StatisticsResult, error)
	Estimate(ctx context.Context, query services.EstimateQuery) (*services.EstimateResult, error)
	BurnUp(ctx context.Context, query services.BurnUpQuery) (*services.BurnUpResult, error)
}

// LogActivityCommand describes an activity to log. A zero Timestamp means
// the activity finishes now.
type LogActivityCommand struct {
	Timestamp time.Time
	Duration  time.Duration
	Client    string
	Project   string
	Task      string
	Notes     string
	Category  string
}

type apiImpl struct {
	store     eventstore.EventStore
	clock     domain.Clock
	services  *services.ServiceContainer
	validator *validation.ActivityValidator
	cleaner   *validation.Validator
	logger    logging.Logger
}

// New creates a new API instance on store.
func New(store eventstore.EventStore, clock domain.Clock, capacity services.Capacity, logger logging.Logger) API {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &apiImpl{
		store:     store,
		clock:     clock,
		services:  services.NewServiceContainer(store, clock, capacity, logger),
		validator: validation.NewActivityValidator(),
		cleaner:   validation.NewValidator(),
		logger:    logger,
	}
}

func (a *apiImpl) LogActivity(ctx context.Context, cmd LogActivityCommand) (activity *domain.Activity, err error) {
	defer observe("log-activity", time.Now(), &err)

	logged := domain.Activity{
		DateTime: cmd.Timestamp,
		Duration: cmd.Duration,
		Client:   a.cleaner.TrimAndValidateString(cmd.Client),
		Project:  a.cleaner.TrimAndValidateString(cmd.Project),
		Task:     a.cleaner.TrimAndValidateString(cmd.Task),
		Notes:    a.cleaner.TrimAndValidateString(cmd.Notes),
		Category: a.cleaner.TrimAndValidateString(cmd.Category),
	}
	if logged.DateTime.IsZero() {
		logged.DateTime = a.clock.Now()
	}

	if err := a.validator.ValidateActivityForLogging(logged); err != nil {
		return nil, errors.NewValidationError("invalid activity", err)
	}

	if err := a.store.Record(ctx, logged); err != nil {
		err = errors.StoreFailure("record activity", err)
		logging.LogError(a.logger, err, "log activity")
		return nil, err
	}

	a.logger.Info("activity logged", "task", logged.Task, "duration", logged.Duration)
	return &logged, nil
}

func (a *apiImpl) RecentActivities(ctx context.Context, query services.RecentActivitiesQuery) (result *services.RecentActivitiesResult, err error) {
	defer observe("recent-activities", time.Now(), &err)
	return a.services.RecentActivities.Query(ctx, query)
}

func (a *apiImpl) Report(ctx context.Context, query services.ReportQuery) (result *services.ReportResult, err error) {
	defer observe("report", time.Now(), &err)
	return a.services.Report.Query(ctx, query)
}

func (a *apiImpl) Timesheet(ctx context.Context, query services.TimesheetQuery) (result *services.TimesheetResult, err error) {
	defer observe("timesheet", time.Now(), &err)
	return a.services.Timesheet.Query(ctx, query)
}

func (a *apiImpl) Statistics(ctx context.Context, query services.StatisticsQuery) (result *services.StatisticsResult, err error) {
	defer observe("statistics", time.Now(), &err)
	return a.services.Statistics.Query(ctx, query)
}

func (a *apiImpl) Estimate(ctx context.Context, query services.EstimateQuery) (result *services.EstimateResult, err error) {
	defer observe("estimate", time.Now(), &err)
	return a.services.Estimate.Query(ctx, query)
}

func (a *apiImpl) BurnUp(ctx context.Context, query services.BurnUpQuery) (result *services.BurnUpResult, err error) {
	defer observe("burn-up", time.Now(), &err)
	return a.services.BurnUp.Query(ctx, query)
}

func observe(operation string, start time.Time, err *error) {
	observability.ObserveQuery(operation, start, *err)
}
