package cli

import (
	"context"

	"activity-sampler/internal/services"
)

// RecentOptions holds the flags of the recent command
type RecentOptions struct {
	Today  string
	Filter FilterOptions
}

// RecentCommand handles the recent command
type RecentCommand struct {
	app  *App
	opts *RecentOptions
}

// NewRecentCommand creates a new recent command handler
func NewRecentCommand(app *App, opts *RecentOptions) *RecentCommand {
	return &RecentCommand{app: app, opts: opts}
}

// Execute prints the activities of the last 30 days grouped by day, then
// the time summary.
func (c *RecentCommand) Execute(ctx context.Context, _ []string) error {
	query := services.RecentActivitiesQuery{}
	if c.opts.Today != "" {
		today, err := parseDateOption("today", c.opts.Today)
		if err != nil {
			return c.app.errors.Handle("query recent activities", err)
		}
		query.Today = today
	}
	loc, err := c.opts.Filter.zone()
	if err != nil {
		return c.app.errors.Handle("query recent activities", err)
	}
	query.TimeZone = loc
	if loc == nil {
		loc = c.app.clock.Location()
	}

	result, err := c.app.api.RecentActivities(ctx, query)
	if err != nil {
		return c.app.errors.Handle("query recent activities", err)
	}

	if len(result.WorkingDays) == 0 {
		c.app.println(mutedStyle.Render("No activities in the last 30 days"))
	}
	for _, day := range result.WorkingDays {
		c.app.println(titleStyle.Render(day.Date.Weekday().String() + ", " + day.Date.String()))
		rows := make([][]string, 0, len(day.Activities))
		for _, activity := range day.Activities {
			rows = append(rows, []string{
				activity.DateTime.In(loc).Format("15:04"),
				formatHours(activity.Duration),
				activity.Client,
				activity.Project,
				activity.Task,
				activity.Notes,
				activity.Category,
			})
		}
		c.app.println(renderTable([]string{"Time", "Hours", "Client", "Project", "Task", "Notes", "Category"}, rows))
	}

	summary := result.TimeSummary
	c.app.println(renderTable(
		[]string{"Today", "Yesterday", "This week", "This month"},
		[][]string{{
			formatHours(summary.HoursToday),
			formatHours(summary.HoursYesterday),
			formatHours(summary.HoursThisWeek),
			formatHours(summary.HoursThisMonth),
		}},
	))
	return nil
}
