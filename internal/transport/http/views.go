package httptransport

import (
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/services"
)

// LogActivityRequest is the body of POST /api/activities. Duration is an
// ISO-8601 duration; an absent timestamp means now.
type LogActivityRequest struct {
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Duration  string     `json:"duration"`
	Client    string     `json:"client"`
	Project   string     `json:"project"`
	Task      string     `json:"task"`
	Notes     string     `json:"notes,omitempty"`
	Category  string     `json:"category,omitempty"`
}

// ActivityView exposes one logged activity.
type ActivityView struct {
	Timestamp time.Time `json:"timestamp"`
	Duration  string    `json:"duration"`
	Client    string    `json:"client"`
	Project   string    `json:"project"`
	Task      string    `json:"task"`
	Notes     string    `json:"notes,omitempty"`
	Category  string    `json:"category,omitempty"`
}

type WorkingDayView struct {
	Date       domain.Date    `json:"date"`
	Activities []ActivityView `json:"activities"`
}

type TimeSummaryView struct {
	HoursToday     string `json:"hoursToday"`
	HoursYesterday string `json:"hoursYesterday"`
	HoursThisWeek  string `json:"hoursThisWeek"`
	HoursThisMonth string `json:"hoursThisMonth"`
}

type RecentActivitiesResponse struct {
	WorkingDays []WorkingDayView `json:"workingDays"`
	TimeSummary TimeSummaryView  `json:"timeSummary"`
}

type ReportEntryView struct {
	Client    string      `json:"client"`
	Project   string      `json:"project"`
	Task      string      `json:"task"`
	Category  string      `json:"category"`
	Hours     string      `json:"hours"`
	Start     domain.Date `json:"start"`
	Finish    domain.Date `json:"finish"`
	CycleTime int         `json:"cycleTime"`
}

type ReportResponse struct {
	From       domain.Date       `json:"from"`
	To         domain.Date       `json:"to"`
	Scope      string            `json:"scope"`
	Entries    []ReportEntryView `json:"entries"`
	TotalHours string            `json:"totalHours"`
}

type TimesheetEntryView struct {
	Date    domain.Date `json:"date"`
	Client  string      `json:"client"`
	Project string      `json:"project"`
	Task    string      `json:"task"`
	Hours   string      `json:"hours"`
}

type TimesheetResponse struct {
	From       domain.Date          `json:"from"`
	To         domain.Date          `json:"to"`
	Entries    []TimesheetEntryView `json:"entries"`
	TotalHours string               `json:"totalHours"`
	Capacity   string               `json:"capacity"`
	Offset     string               `json:"offset"`
}

type HistogramView struct {
	BinEdges    []string `json:"binEdges"`
	Frequencies []int    `json:"frequencies"`
	XAxisLabel  string   `json:"xAxisLabel"`
	YAxisLabel  string   `json:"yAxisLabel"`
}

type MedianView struct {
	Edge0   float64 `json:"edge0"`
	Edge25  float64 `json:"edge25"`
	Edge50  float64 `json:"edge50"`
	Edge75  float64 `json:"edge75"`
	Edge100 float64 `json:"edge100"`
}

type StatisticsResponse struct {
	Histogram  HistogramView `json:"histogram"`
	Median     MedianView    `json:"median"`
	Categories []string      `json:"categories"`
	TotalCount int           `json:"totalCount"`
}

type EstimateEntryView struct {
	CycleTime             int     `json:"cycleTime"`
	Frequency             int     `json:"frequency"`
	Probability           float64 `json:"probability"`
	CumulativeProbability float64 `json:"cumulativeProbability"`
}

type EstimateResponse struct {
	CycleTimes []EstimateEntryView `json:"cycleTimes"`
	TotalCount int                 `json:"totalCount"`
	Categories []string            `json:"categories"`
}

type BurnUpEntryView struct {
	Date                 domain.Date `json:"date"`
	Throughput           int         `json:"throughput"`
	CumulativeThroughput int         `json:"cumulativeThroughput"`
}

type BurnUpResponse struct {
	From            domain.Date       `json:"from"`
	To              domain.Date       `json:"to"`
	Entries         []BurnUpEntryView `json:"entries"`
	TotalThroughput int               `json:"totalThroughput"`
	Categories      []string          `json:"categories"`
}

func iso(d time.Duration) string {
	return domain.FormatISODuration(d)
}

func toActivityView(a domain.Activity) ActivityView {
	return ActivityView{
		Timestamp: a.DateTime,
		Duration:  iso(a.Duration),
		Client:    a.Client,
		Project:   a.Project,
		Task:      a.Task,
		Notes:     a.Notes,
		Category:  a.Category,
	}
}

func toRecentActivitiesResponse(result *services.RecentActivitiesResult) RecentActivitiesResponse {
	days := make([]WorkingDayView, 0, len(result.WorkingDays))
	for _, day := range result.WorkingDays {
		activities := make([]ActivityView, 0, len(day.Activities))
		for _, activity := range day.Activities {
			activities = append(activities, toActivityView(activity))
		}
		days = append(days, WorkingDayView{Date: day.Date, Activities: activities})
	}
	return RecentActivitiesResponse{
		WorkingDays: days,
		TimeSummary: TimeSummaryView{
			HoursToday:     iso(result.TimeSummary.HoursToday),
			HoursYesterday: iso(result.TimeSummary.HoursYesterday),
			HoursThisWeek:  iso(result.TimeSummary.HoursThisWeek),
			HoursThisMonth: iso(result.TimeSummary.HoursThisMonth),
		},
	}
}

func toReportResponse(result *services.ReportResult) ReportResponse {
	entries := make([]ReportEntryView, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, ReportEntryView{
			Client:    e.Client,
			Project:   e.Project,
			Task:      e.Task,
			Category:  e.Category,
			Hours:     iso(e.Hours),
			Start:     e.Start,
			Finish:    e.Finish,
			CycleTime: e.CycleTime,
		})
	}
	return ReportResponse{
		From:       result.From,
		To:         result.To,
		Scope:      result.Scope.String(),
		Entries:    entries,
		TotalHours: iso(result.TotalHours),
	}
}

func toTimesheetResponse(result *services.TimesheetResult) TimesheetResponse {
	entries := make([]TimesheetEntryView, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, TimesheetEntryView{
			Date:    e.Date,
			Client:  e.Client,
			Project: e.Project,
			Task:    e.Task,
			Hours:   iso(e.Hours),
		})
	}
	return TimesheetResponse{
		From:       result.From,
		To:         result.To,
		Entries:    entries,
		TotalHours: iso(result.TotalHours),
		Capacity:   iso(result.Capacity),
		Offset:     iso(result.Offset),
	}
}

func toStatisticsResponse(result *services.StatisticsResult) StatisticsResponse {
	return StatisticsResponse{
		Histogram: HistogramView{
			BinEdges:    result.Histogram.BinEdges,
			Frequencies: result.Histogram.Frequencies,
			XAxisLabel:  result.Histogram.XAxisLabel,
			YAxisLabel:  result.Histogram.YAxisLabel,
		},
		Median:     MedianView(result.Median),
		Categories: result.Categories,
		TotalCount: result.TotalCount,
	}
}

func toEstimateResponse(result *services.EstimateResult) EstimateResponse {
	entries := make([]EstimateEntryView, 0, len(result.CycleTimes))
	for _, e := range result.CycleTimes {
		entries = append(entries, EstimateEntryView(e))
	}
	return EstimateResponse{
		CycleTimes: entries,
		TotalCount: result.TotalCount,
		Categories: result.Categories,
	}
}

func toBurnUpResponse(result *services.BurnUpResult) BurnUpResponse {
	entries := make([]BurnUpEntryView, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, BurnUpEntryView(e))
	}
	return BurnUpResponse{
		From:            result.From,
		To:              result.To,
		Entries:         entries,
		TotalThroughput: result.TotalThroughput,
		Categories:      result.Categories,
	}
}
