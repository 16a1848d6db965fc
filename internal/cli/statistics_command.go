package cli

import (
	"context"
	"strconv"

	"activity-sampler/internal/services"
)

// StatisticsOptions holds the flags of the statistics command
type StatisticsOptions struct {
	Filter FilterOptions
	Scope  string
}

// StatisticsCommand handles the statistics command
type StatisticsCommand struct {
	app  *App
	opts *StatisticsOptions
}

// NewStatisticsCommand creates a new statistics command handler
func NewStatisticsCommand(app *App, opts *StatisticsOptions) *StatisticsCommand {
	return &StatisticsCommand{app: app, opts: opts}
}

// Execute prints the histogram and five-number summary of working hours or
// cycle times.
func (c *StatisticsCommand) Execute(ctx context.Context, _ []string) error {
	loc, err := c.opts.Filter.zone()
	if err != nil {
		return c.app.errors.Handle("query statistics", err)
	}
	scope := services.StatisticsScopeWorkingHours
	if c.opts.Scope != "" {
		if scope, err = services.ParseStatisticsScope(c.opts.Scope); err != nil {
			return c.app.errors.Handle("query statistics", err)
		}
	}

	result, err := c.app.api.Statistics(ctx, services.StatisticsQuery{
		Scope:      scope,
		Categories: c.opts.Filter.categories(),
		TimeZone:   loc,
	})
	if err != nil {
		return c.app.errors.Handle("query statistics", err)
	}

	histogram := result.Histogram
	c.app.println(titleStyle.Render("Statistics of " + scope.String() + ", " + strconv.Itoa(result.TotalCount) + " samples"))
	rows := make([][]string, 0, len(histogram.Frequencies))
	for i, frequency := range histogram.Frequencies {
		rows = append(rows, []string{
			histogram.BinEdges[i] + " - " + histogram.BinEdges[i+1],
			strconv.Itoa(frequency),
			bar(frequency),
		})
	}
	c.app.println(renderTable([]string{histogram.XAxisLabel, histogram.YAxisLabel, ""}, rows))

	median := result.Median
	c.app.println(renderTable(
		[]string{"Min", "25%", "Median", "75%", "Max"},
		[][]string{{
			formatNumber(median.Edge0),
			formatNumber(median.Edge25),
			formatNumber(median.Edge50),
			formatNumber(median.Edge75),
			formatNumber(median.Edge100),
		}},
	))
	c.app.println(mutedStyle.Render("Categories: " + formatCategories(result.Categories)))
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
