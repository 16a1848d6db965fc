package services

import (
	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
)

// NewServiceContainer wires every projection to one store and clock
func NewServiceContainer(store eventstore.EventStore, clock domain.Clock, capacity Capacity, logger logging.Logger) *ServiceContainer {
	return &ServiceContainer{
		RecentActivities: NewRecentActivitiesService(store, clock, logger),
		Report:           NewReportService(store, clock, logger),
		Timesheet:        NewTimesheetService(store, clock, capacity, logger),
		Statistics:       NewStatisticsService(store, clock, logger),
		Estimate:         NewEstimateService(store, clock, logger),
		BurnUp:           NewBurnUpService(store, clock, logger),
	}
}
