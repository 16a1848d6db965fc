package cli

import (
	"context"

	"activity-sampler/internal/services"
)

// TimesheetOptions holds the flags of the timesheet command
type TimesheetOptions struct {
	Range  RangeOptions
	Filter FilterOptions
}

// TimesheetCommand handles the timesheet command
type TimesheetCommand struct {
	app  *App
	opts *TimesheetOptions
}

// NewTimesheetCommand creates a new timesheet command handler
func NewTimesheetCommand(app *App, opts *TimesheetOptions) *TimesheetCommand {
	return &TimesheetCommand{app: app, opts: opts}
}

// Execute prints the hours per day and task, measured against capacity
func (c *TimesheetCommand) Execute(ctx context.Context, _ []string) error {
	from, to, err := c.opts.Range.resolve(c.app.clock)
	if err != nil {
		return c.app.errors.Handle("query timesheet", err)
	}
	loc, err := c.opts.Filter.zone()
	if err != nil {
		return c.app.errors.Handle("query timesheet", err)
	}

	result, err := c.app.api.Timesheet(ctx, services.TimesheetQuery{From: from, To: to, TimeZone: loc})
	if err != nil {
		return c.app.errors.Handle("query timesheet", err)
	}

	c.app.println(titleStyle.Render("Timesheet, " + result.From.String() + " to " + result.To.String()))
	if len(result.Entries) > 0 {
		rows := make([][]string, 0, len(result.Entries))
		for _, entry := range result.Entries {
			rows = append(rows, []string{
				entry.Date.String(),
				entry.Client,
				entry.Project,
				entry.Task,
				formatHours(entry.Hours),
			})
		}
		c.app.println(renderTable([]string{"Date", "Client", "Project", "Task", "Hours"}, rows))
	} else {
		c.app.println(mutedStyle.Render("No activities found"))
	}

	c.app.println(renderTable(
		[]string{"Total", "Capacity", "Offset"},
		[][]string{{formatHours(result.TotalHours), formatHours(result.Capacity), formatOffset(result.Offset)}},
	))
	return nil
}
