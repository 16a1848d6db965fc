package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"activity-sampler/internal/config"
	"activity-sampler/internal/logging"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory BackendFactory
	out     io.Writer
	config  *config.Config
	backend *Backend
	globals globalFlags
}

// globalFlags holds the persistent configuration override flags
type globalFlags struct {
	storeDriver    string
	storePath      string
	postgresURL    string
	zone           string
	weeklyCapacity string
	holidays       []string
	serverAddress  string
	kafkaBrokers   []string
	kafkaTopic     string
	appTimeout     time.Duration
	verbose        bool
}

// NewRootCommand creates the root cobra command with global flags. The
// backend is built on first use from the loaded configuration.
func NewRootCommand(factory BackendFactory, out io.Writer) *RootCommand {
	root := &RootCommand{
		factory: factory,
		out:     out,
	}

	root.cmd = &cobra.Command{
		Use:   "as",
		Short: "Log activities and project them into reports and forecasts",
		Long: `Activity Sampler (as) logs what you worked on and derives reports from the log.

Every activity is appended to an event log. All reports are recomputed from
the log on every query, so nothing derived is ever stored.

EXAMPLES:
  as log "Write release notes" --client ACME --project Web --duration PT30M
  as log --interactive                     # Ask for every field
  as recent                                # Last 30 days plus time summary
  as report --scope projects --period month --offset -1
  as timesheet --from 2025-08-01 --to 2025-08-31
  as statistics --scope cycle-times --category Feature
  as estimate                              # Cycle time forecast
  as burnup --period quarter
  as serve                                 # JSON query API and /metrics

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Store Configuration:
    AS_STORE_DRIVER                        memory, csv, sqlite or postgres (default: csv)
    AS_STORE_DIR                           Store directory (default: ~/.activity-sampler)
    AS_STORE_PATH                          Store file, overrides the directory default
    AS_POSTGRES_URL                        Postgres connection string
    AS_STORE_DIR_PERMISSIONS               Store directory permissions (default: 0755)

  Time Configuration:
    AS_TIME_ZONE                           IANA time zone (default: local)

  Capacity Configuration:
    AS_CAPACITY_WEEKLY                     Weekly capacity, e.g. 40h or PT40H (default: 40h)
    AS_CAPACITY_HOLIDAYS                   Comma separated holidays, YYYY-MM-DD

  Server Configuration:
    AS_SERVER_ADDRESS                      Listen address (default: localhost:3000)
    AS_SERVER_READ_TIMEOUT                 Read timeout (default: 10s)
    AS_SERVER_WRITE_TIMEOUT                Write timeout (default: 30s)
    AS_SERVER_SHUTDOWN_TIMEOUT             Shutdown timeout (default: 5s)

  Notification Configuration:
    AS_KAFKA_BROKERS                       Comma separated brokers, empty disables notifications
    AS_KAFKA_TOPIC                         Topic (default: activity-logged)

  Application Configuration:
    AS_APP_TIMEOUT                         Application timeout (default: 60s)
    AS_APP_VERBOSE                         Enable verbose output (default: false)
    AS_DEBUG                               Print debug traces to stderr

GETTING HELP:
  as [command] --help                      # Get help for any specific command
  as completion bash                       # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
	}
	root.cmd.SetOut(out)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases the backend afterwards
func (r *RootCommand) Execute(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if r.backend != nil && r.backend.Close != nil {
		if closeErr := r.backend.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close event store: %w", closeErr)
		}
	}
	return err
}

// Report prints err to w as users should see it and returns the process
// exit status for it
func (r *RootCommand) Report(w io.Writer, err error) int {
	eh := NewErrorHandler()
	logging.Debugf("%s: %v\n", eh.GetErrorCode(err), err)
	fmt.Fprintf(w, "Error: %v\n", eh.HandleSimple(err))
	return eh.ExitCode(err)
}

// SetArgs sets the arguments used instead of os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration loaded by the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	g := &r.globals

	// Store configuration
	flags.StringVar(&g.storeDriver, "store-driver", "", "Event store driver (overrides AS_STORE_DRIVER)")
	flags.StringVar(&g.storePath, "store-path", "", "Event store file (overrides AS_STORE_PATH)")
	flags.StringVar(&g.postgresURL, "postgres-url", "", "Postgres connection string (overrides AS_POSTGRES_URL)")

	// Time configuration
	flags.StringVar(&g.zone, "time-zone", "", "Default time zone (overrides AS_TIME_ZONE)")

	// Capacity configuration
	flags.StringVar(&g.weeklyCapacity, "weekly-capacity", "", "Weekly capacity, e.g. 40h or PT40H (overrides AS_CAPACITY_WEEKLY)")
	flags.StringSliceVar(&g.holidays, "holiday", nil, "Holiday, YYYY-MM-DD, repeatable (overrides AS_CAPACITY_HOLIDAYS)")

	// Server configuration
	flags.StringVar(&g.serverAddress, "address", "", "Query API listen address (overrides AS_SERVER_ADDRESS)")

	// Notification configuration
	flags.StringSliceVar(&g.kafkaBrokers, "kafka-broker", nil, "Kafka broker, repeatable (overrides AS_KAFKA_BROKERS)")
	flags.StringVar(&g.kafkaTopic, "kafka-topic", "", "Kafka topic (overrides AS_KAFKA_TOPIC)")

	// Application configuration
	flags.DurationVar(&g.appTimeout, "app-timeout", 0, "Application timeout (overrides AS_APP_TIMEOUT)")
	flags.BoolVar(&g.verbose, "verbose", false, "Enable verbose output (overrides AS_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	logOpts := &LogOptions{}
	logCmd := &cobra.Command{
		Use:   "log [task]",
		Short: "Log an activity",
		Long: `Log an activity that just finished, or finished at --timestamp.

Durations accept ISO-8601 (PT30M, PT1H15M) or Go shorthand (30m, 1h15m).
Timestamps accept RFC 3339 or "YYYY-MM-DD HH:MM" in the configured zone.

Examples:
  as log "Fix login bug" --client ACME --project Web --duration PT1H
  as log --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, r.config.Application.Timeout*2, func(app *App) Command {
				return NewLogCommand(app, logOpts)
			})
		},
	}
	logFlags := logCmd.Flags()
	logFlags.StringVar(&logOpts.Timestamp, "timestamp", "", "When the activity finished (default now)")
	logFlags.StringVarP(&logOpts.Duration, "duration", "d", "PT30M", "How long the activity took")
	logFlags.StringVarP(&logOpts.Client, "client", "c", "", "Client")
	logFlags.StringVarP(&logOpts.Project, "project", "p", "", "Project")
	logFlags.StringVar(&logOpts.Task, "task", "", "Task, instead of the positional argument")
	logFlags.StringVarP(&logOpts.Notes, "notes", "n", "", "Notes")
	logFlags.StringVar(&logOpts.Category, "category", "", "Category")
	logFlags.BoolVarP(&logOpts.Interactive, "interactive", "i", false, "Ask for every field")

	recentOpts := &RecentOptions{}
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the activities of the last 30 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, r.config.Application.Timeout, func(app *App) Command {
				return NewRecentCommand(app, recentOpts)
			})
		},
	}
	recentCmd.Flags().StringVar(&recentOpts.Today, "today", "", "Last day of the window, YYYY-MM-DD (default today)")
	recentOpts.Filter.addZoneFlag(recentCmd.Flags())

	reportOpts := &ReportOptions{}
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Sum hours per client, project, task or category",
		Long: `Sum hours per client, project, task or category in a date range.

Without --from, --to or --period the current month is reported.

Examples:
  as report                                # This month by client
  as report --scope tasks --period week    # This week by task
  as report --period month --offset -1     # Last month`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, r.config.Application.Timeout, func(app *App) Command {
				return NewReportCommand(app, reportOpts)
			})
		},
	}
	reportOpts.Range.addFlags(reportCmd.Flags())
	reportOpts.Filter.addZoneFlag(reportCmd.Flags())
	reportCmd.Flags().StringVar(&reportOpts.Scope, "scope", "clients", "Group by clients, projects, tasks or categories")

	timesheetOpts := &TimesheetOptions{}
	timesheetCmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Show hours per day and task against capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, r.config.Application.Timeout, func(app *App) Command {
				return NewTimesheetCommand(app, timesheetOpts)
			})
		},
	}
	timesheetOpts.Range.addFlags(timesheetCmd.Flags())
	timesheetOpts.Filter.addZoneFlag(timesheetCmd.Flags())

	statisticsOpts := &StatisticsOptions{}
	statisticsCmd := &cobra.Command{
		Use:   "statistics",
		Short: "Show the distribution of working hours or cycle times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, r.config.Application.Timeout, func(app *App) Command {
				return NewStatisticsCommand(app, statisticsOpts)
			})
		},
	}
	statisticsOpts.Filter.addFlags(statisticsCmd.Flags())
	statisticsCmd.Flags().StringVar(&statisticsOpts.Scope, "scope", "working-hours", "working-hours or cycle-times")

	estimateOpts := &EstimateOptions{}
	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "Forecast how long a task takes from past cycle times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, r.config.Application.Timeout, func(app *App) Command {
				return NewEstimateCommand(app, estimateOpts)
			})
		},
	}
	estimateOpts.Filter.addFlags(estimateCmd.Flags())

	burnUpOpts := &BurnUpOptions{}
	burnUpCmd := &cobra.Command{
		Use:   "burnup",
		Short: "Show finished tasks per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, r.config.Application.Timeout, func(app *App) Command {
				return NewBurnUpCommand(app, burnUpOpts)
			})
		},
	}
	burnUpOpts.Range.addFlags(burnUpCmd.Flags())
	burnUpOpts.Filter.addFlags(burnUpCmd.Flags())

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON query API",
		Long: `Serve the JSON query API, /healthz and Prometheus /metrics until interrupted.

Endpoints:
  POST /api/activities
  GET  /api/activities/recent
  GET  /api/report, /api/timesheet, /api/statistics, /api/estimate, /api/burn-up`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)
			return r.run(cmd, args, 0, func(app *App) Command {
				return NewServeCommand(app, r.config.Server)
			})
		},
	}

	r.cmd.AddCommand(
		logCmd,
		recentCmd,
		reportCmd,
		timesheetCmd,
		statisticsCmd,
		estimateCmd,
		burnUpCmd,
		serveCmd,
	)
}

// run builds the backend on first use and executes the handler. A zero
// timeout runs without deadline.
func (r *RootCommand) run(cmd *cobra.Command, args []string, timeout time.Duration, handler func(app *App) Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if r.backend == nil {
		backend, err := r.factory(ctx, r.config)
		if err != nil {
			return err
		}
		r.backend = backend
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return handler(NewApp(r.backend, r.out)).Execute(ctx, args)
}

// loadConfig loads defaults and environment, then applies the flags the
// user set.
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()
	g := r.globals
	overrides := &config.ConfigOverrides{}

	if flags.Changed("store-driver") {
		overrides.StoreDriver = &g.storeDriver
	}
	if flags.Changed("store-path") {
		overrides.StorePath = &g.storePath
	}
	if flags.Changed("postgres-url") {
		overrides.PostgresURL = &g.postgresURL
	}
	if flags.Changed("time-zone") {
		overrides.TimeZone = &g.zone
	}
	if flags.Changed("weekly-capacity") {
		weekly := config.ParseCapacityWithFallback(g.weeklyCapacity, -1)
		overrides.WeeklyCapacity = &weekly
	}
	if flags.Changed("holiday") {
		overrides.Holidays = g.holidays
	}
	if flags.Changed("address") {
		overrides.ServerAddress = &g.serverAddress
	}
	if flags.Changed("kafka-broker") {
		overrides.KafkaBrokers = g.kafkaBrokers
	}
	if flags.Changed("kafka-topic") {
		overrides.KafkaTopic = &g.kafkaTopic
	}
	if flags.Changed("app-timeout") {
		overrides.Timeout = &g.appTimeout
	}
	if flags.Changed("verbose") {
		overrides.Verbose = &g.verbose
	}

	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return err
	}
	r.config = cfg
	return nil
}
