package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"activity-sampler/internal/api"
	"activity-sampler/internal/config"
	"activity-sampler/internal/domain"
	"activity-sampler/internal/logging"
)

// Command is implemented by every subcommand handler
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// Backend is everything the commands run against
type Backend struct {
	API    api.API
	Clock  domain.Clock
	Logger logging.Logger
	Close  func() error
}

// BackendFactory builds a Backend from the loaded configuration
type BackendFactory func(ctx context.Context, cfg *config.Config) (*Backend, error)

// App represents the main CLI application
type App struct {
	api    api.API
	clock  domain.Clock
	logger logging.Logger
	out    io.Writer
	errors *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(backend *Backend, out io.Writer) *App {
	logger := backend.Logger
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &App{
		api:    backend.API,
		clock:  backend.Clock,
		logger: logger,
		out:    out,
		errors: NewErrorHandler(),
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// parseActivityDuration accepts ISO-8601 durations such as PT30M as well as
// Go shorthand such as 30m or 1h30m.
func parseActivityDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToUpper(s), "P") {
		return domain.ParseISODuration(strings.ToUpper(s))
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q, expected e.g. PT30M or 30m", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %q is negative", s)
	}
	return d, nil
}

// parseTimestamp accepts RFC 3339 instants or a local "2006-01-02 15:04"
// wall time in loc. An empty string yields the zero time.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, expected RFC 3339 or YYYY-MM-DD HH:MM", s)
}
