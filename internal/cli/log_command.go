package cli

import (
	"context"
	"errors"
	"strings"

	"activity-sampler/internal/api"
	apperrors "activity-sampler/internal/errors"

	"github.com/charmbracelet/huh"
)

// LogOptions holds the flags of the log command
type LogOptions struct {
	Timestamp   string
	Duration    string
	Client      string
	Project     string
	Task        string
	Notes       string
	Category    string
	Interactive bool
}

// LogCommand handles the log command
type LogCommand struct {
	app    *App
	opts   *LogOptions
	prompt func(opts *LogOptions) error
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App, opts *LogOptions) *LogCommand {
	return &LogCommand{app: app, opts: opts, prompt: promptActivity}
}

// Execute runs the log command. Positional arguments form the task name.
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	opts := *c.opts
	if len(args) > 0 {
		opts.Task = strings.Join(args, " ")
	}

	if opts.Interactive {
		if err := c.prompt(&opts); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				c.app.println(mutedStyle.Render("Nothing logged."))
				return nil
			}
			return c.app.errors.Handle("read activity", err)
		}
	}

	timestamp, err := parseTimestamp(opts.Timestamp, c.app.clock.Location())
	if err != nil {
		return c.app.errors.Handle("log activity", apperrors.NewInvalidInputError("timestamp", opts.Timestamp, err.Error()))
	}
	duration, err := parseActivityDuration(opts.Duration)
	if err != nil {
		return c.app.errors.Handle("log activity", apperrors.NewInvalidInputError("duration", opts.Duration, err.Error()))
	}

	activity, err := c.app.api.LogActivity(ctx, api.LogActivityCommand{
		Timestamp: timestamp,
		Duration:  duration,
		Client:    opts.Client,
		Project:   opts.Project,
		Task:      opts.Task,
		Notes:     opts.Notes,
		Category:  opts.Category,
	})
	if err != nil {
		return c.app.errors.Handle("log activity", err)
	}

	c.app.printf("%s %s (%s) for %s / %s at %s\n",
		successStyle.Render("Logged"),
		titleStyle.Render(activity.Task),
		formatHours(activity.Duration),
		activity.Client,
		activity.Project,
		activity.DateTime.In(c.app.clock.Location()).Format("2006-01-02 15:04"),
	)
	return nil
}

// promptActivity asks for every field of an activity, prefilled with the
// flag values.
func promptActivity(opts *LogOptions) error {
	required := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New(field + " is required")
			}
			return nil
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Client").Value(&opts.Client).Validate(required("client")),
			huh.NewInput().Title("Project").Value(&opts.Project).Validate(required("project")),
			huh.NewInput().Title("Task").Value(&opts.Task).Validate(required("task")),
			huh.NewInput().Title("Notes").Value(&opts.Notes),
			huh.NewInput().Title("Category").Value(&opts.Category),
		),
		huh.NewGroup(
			huh.NewInput().Title("Duration").Description("e.g. PT30M or 1h15m").Value(&opts.Duration).
				Validate(func(s string) error {
					_, err := parseActivityDuration(s)
					return err
				}),
			huh.NewInput().Title("Finished at").Description("YYYY-MM-DD HH:MM, empty for now").Value(&opts.Timestamp),
		),
	)
	return form.Run()
}
