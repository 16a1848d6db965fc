package cli

import (
	"context"
	"strconv"

	"activity-sampler/internal/services"
)

// EstimateOptions holds the flags of the estimate command
type EstimateOptions struct {
	Filter FilterOptions
}

// EstimateCommand handles the estimate command
type EstimateCommand struct {
	app  *App
	opts *EstimateOptions
}

// NewEstimateCommand creates a new estimate command handler
func NewEstimateCommand(app *App, opts *EstimateOptions) *EstimateCommand {
	return &EstimateCommand{app: app, opts: opts}
}

// Execute prints the probability of finishing a task within each cycle time
func (c *EstimateCommand) Execute(ctx context.Context, _ []string) error {
	loc, err := c.opts.Filter.zone()
	if err != nil {
		return c.app.errors.Handle("query estimate", err)
	}

	result, err := c.app.api.Estimate(ctx, services.EstimateQuery{
		Categories: c.opts.Filter.categories(),
		TimeZone:   loc,
	})
	if err != nil {
		return c.app.errors.Handle("query estimate", err)
	}

	c.app.println(titleStyle.Render("Estimate from " + strconv.Itoa(result.TotalCount) + " tasks"))
	if len(result.CycleTimes) == 0 {
		c.app.println(mutedStyle.Render("No tasks found"))
	} else {
		rows := make([][]string, 0, len(result.CycleTimes))
		for _, entry := range result.CycleTimes {
			rows = append(rows, []string{
				strconv.Itoa(entry.CycleTime),
				strconv.Itoa(entry.Frequency),
				formatPercent(entry.Probability),
				formatPercent(entry.CumulativeProbability),
			})
		}
		c.app.println(renderTable([]string{"Cycle time (days)", "Tasks", "Probability", "Cumulative"}, rows))
	}
	c.app.println(mutedStyle.Render("Categories: " + formatCategories(result.Categories)))
	return nil
}
