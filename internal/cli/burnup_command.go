package cli

import (
	"context"
	"strconv"

	"activity-sampler/internal/services"
)

// BurnUpOptions holds the flags of the burnup command
type BurnUpOptions struct {
	Range  RangeOptions
	Filter FilterOptions
}

// BurnUpCommand handles the burnup command
type BurnUpCommand struct {
	app  *App
	opts *BurnUpOptions
}

// NewBurnUpCommand creates a new burnup command handler
func NewBurnUpCommand(app *App, opts *BurnUpOptions) *BurnUpCommand {
	return &BurnUpCommand{app: app, opts: opts}
}

// Execute prints the tasks finished per day and their running total
func (c *BurnUpCommand) Execute(ctx context.Context, _ []string) error {
	from, to, err := c.opts.Range.resolve(c.app.clock)
	if err != nil {
		return c.app.errors.Handle("query burn-up", err)
	}
	loc, err := c.opts.Filter.zone()
	if err != nil {
		return c.app.errors.Handle("query burn-up", err)
	}

	result, err := c.app.api.BurnUp(ctx, services.BurnUpQuery{
		From:       from,
		To:         to,
		Categories: c.opts.Filter.categories(),
		TimeZone:   loc,
	})
	if err != nil {
		return c.app.errors.Handle("query burn-up", err)
	}

	c.app.println(titleStyle.Render("Burn-up, " + result.From.String() + " to " + result.To.String()))
	if len(result.Entries) == 0 {
		c.app.println(mutedStyle.Render("No tasks found"))
	} else {
		rows := make([][]string, 0, len(result.Entries))
		for _, entry := range result.Entries {
			rows = append(rows, []string{
				entry.Date.String(),
				strconv.Itoa(entry.Throughput),
				strconv.Itoa(entry.CumulativeThroughput),
				bar(entry.CumulativeThroughput),
			})
		}
		c.app.println(renderTable([]string{"Date", "Finished", "Total", ""}, rows))
	}
	c.app.printf("%s %d\n", mutedStyle.Render("Tasks finished:"), result.TotalThroughput)
	c.app.println(mutedStyle.Render("Categories: " + formatCategories(result.Categories)))
	return nil
}
