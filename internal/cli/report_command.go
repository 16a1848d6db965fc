package cli

import (
	"context"
	"strconv"

	"activity-sampler/internal/services"
)

// ReportOptions holds the flags of the report command
type ReportOptions struct {
	Range  RangeOptions
	Filter FilterOptions
	Scope  string
}

// ReportCommand handles the report command
type ReportCommand struct {
	app  *App
	opts *ReportOptions
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App, opts *ReportOptions) *ReportCommand {
	return &ReportCommand{app: app, opts: opts}
}

// Execute prints the hours per client, project, task or category
func (c *ReportCommand) Execute(ctx context.Context, _ []string) error {
	from, to, err := c.opts.Range.resolve(c.app.clock)
	if err != nil {
		return c.app.errors.Handle("query report", err)
	}
	loc, err := c.opts.Filter.zone()
	if err != nil {
		return c.app.errors.Handle("query report", err)
	}
	scope := services.ReportScopeClients
	if c.opts.Scope != "" {
		if scope, err = services.ParseReportScope(c.opts.Scope); err != nil {
			return c.app.errors.Handle("query report", err)
		}
	}

	result, err := c.app.api.Report(ctx, services.ReportQuery{
		From:     from,
		To:       to,
		Scope:    scope,
		TimeZone: loc,
	})
	if err != nil {
		return c.app.errors.Handle("query report", err)
	}

	c.app.println(titleStyle.Render("Report by " + result.Scope.String() + ", " + result.From.String() + " to " + result.To.String()))
	if len(result.Entries) == 0 {
		c.app.println(mutedStyle.Render("No activities found"))
		return nil
	}

	rows := make([][]string, 0, len(result.Entries)+1)
	for _, entry := range result.Entries {
		rows = append(rows, []string{
			entry.Client,
			entry.Project,
			entry.Task,
			entry.Category,
			formatHours(entry.Hours),
			entry.Start.String(),
			entry.Finish.String(),
			strconv.Itoa(entry.CycleTime),
		})
	}
	rows = append(rows, []string{"Total", "", "", "", formatHours(result.TotalHours), "", "", ""})
	c.app.println(renderTable(
		[]string{"Client", "Project", "Task", "Category", "Hours", "Start", "Finish", "Cycle time"},
		rows,
	))
	return nil
}
