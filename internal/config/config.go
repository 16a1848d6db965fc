package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"activity-sampler/internal/domain"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Drivers lists every supported event store driver
var Drivers = []string{DriverMemory, DriverCSV, DriverSQLite, DriverPostgres}

// Config holds all configuration options for the activity sampler
type Config struct {
	Store       StoreConfig
	Time        TimeConfig
	Capacity    CapacityConfig
	Server      ServerConfig
	Notify      NotifyConfig
	Application ApplicationConfig
}

// StoreConfig selects and locates the event store. An empty Path uses the
// driver's default file in Dir.
type StoreConfig struct {
	Driver         string `env:"AS_STORE_DRIVER"`
	Dir            string `env:"AS_STORE_DIR"`
	Path           string `env:"AS_STORE_PATH"`
	PostgresURL    string `env:"AS_POSTGRES_URL"`
	DirPermissions uint32 `env:"AS_STORE_DIR_PERMISSIONS"`
}

// TimeConfig holds the default time zone. Empty means the local zone.
type TimeConfig struct {
	Zone string `env:"AS_TIME_ZONE"`
}

// CapacityConfig holds the expected working time for timesheets
type CapacityConfig struct {
	Weekly   time.Duration `env:"AS_CAPACITY_WEEKLY"`
	Holidays []string      `env:"AS_CAPACITY_HOLIDAYS"`
}

// ServerConfig holds HTTP query API configuration
type ServerConfig struct {
	Address         string        `env:"AS_SERVER_ADDRESS"`
	ReadTimeout     time.Duration `env:"AS_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"AS_SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"AS_SERVER_SHUTDOWN_TIMEOUT"`
}

// NotifyConfig holds "activity logged" notification configuration. No
// brokers disables notifications.
type NotifyConfig struct {
	KafkaBrokers []string `env:"AS_KAFKA_BROKERS"`
	Topic        string   `env:"AS_KAFKA_TOPIC"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"AS_APP_TIMEOUT"`
	Verbose bool          `env:"AS_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Store: StoreConfig{
			Driver:         DriverCSV,
			Dir:            filepath.Join(homeDir, ".activity-sampler"),
			DirPermissions: 0755,
		},
		Capacity: CapacityConfig{
			Weekly: 40 * time.Hour,
		},
		Server: ServerConfig{
			Address:         "localhost:3000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Notify: NotifyConfig{
			Topic: "activity-logged",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStorePath returns the full path of the file backed stores
func (c *Config) GetStorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	filename := "activity-log.csv"
	if c.Store.Driver == DriverSQLite {
		filename = "activity-log.db"
	}
	return filepath.Join(c.Store.Dir, filename)
}

// GetLocation returns the configured time zone
func (c *Config) GetLocation() (*time.Location, error) {
	if c.Time.Zone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Time.Zone)
}

// GetHolidays returns the configured holidays as dates
func (c *Config) GetHolidays() ([]domain.Date, error) {
	holidays := make([]domain.Date, 0, len(c.Capacity.Holidays))
	for _, holiday := range c.Capacity.Holidays {
		date, err := domain.ParseDate(holiday)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, date)
	}
	return holidays, nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Store configuration
	if driver := os.Getenv("AS_STORE_DRIVER"); driver != "" {
		c.Store.Driver = strings.ToLower(driver)
	}
	if dir := os.Getenv("AS_STORE_DIR"); dir != "" {
		c.Store.Dir = dir
	}
	if path := os.Getenv("AS_STORE_PATH"); path != "" {
		c.Store.Path = path
	}
	if url := os.Getenv("AS_POSTGRES_URL"); url != "" {
		c.Store.PostgresURL = url
	}
	if perms := os.Getenv("AS_STORE_DIR_PERMISSIONS"); perms != "" {
		c.Store.DirPermissions = ParseUint32WithFallback(perms, 8, c.Store.DirPermissions)
	}

	// Time configuration
	if zone := os.Getenv("AS_TIME_ZONE"); zone != "" {
		c.Time.Zone = zone
	}

	// Capacity configuration
	if weekly := os.Getenv("AS_CAPACITY_WEEKLY"); weekly != "" {
		c.Capacity.Weekly = ParseCapacityWithFallback(weekly, c.Capacity.Weekly)
	}
	if holidays := os.Getenv("AS_CAPACITY_HOLIDAYS"); holidays != "" {
		c.Capacity.Holidays = SplitList(holidays)
	}

	// Server configuration
	if address := os.Getenv("AS_SERVER_ADDRESS"); address != "" {
		c.Server.Address = address
	}
	if timeout := os.Getenv("AS_SERVER_READ_TIMEOUT"); timeout != "" {
		c.Server.ReadTimeout = ParseDurationWithFallback(timeout, c.Server.ReadTimeout)
	}
	if timeout := os.Getenv("AS_SERVER_WRITE_TIMEOUT"); timeout != "" {
		c.Server.WriteTimeout = ParseDurationWithFallback(timeout, c.Server.WriteTimeout)
	}
	if timeout := os.Getenv("AS_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Server.ShutdownTimeout = ParseDurationWithFallback(timeout, c.Server.ShutdownTimeout)
	}

	// Notify configuration
	if brokers := os.Getenv("AS_KAFKA_BROKERS"); brokers != "" {
		c.Notify.KafkaBrokers = SplitList(brokers)
	}
	if topic := os.Getenv("AS_KAFKA_TOPIC"); topic != "" {
		c.Notify.Topic = topic
	}

	// Application configuration
	if timeout := os.Getenv("AS_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("AS_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate store configuration
	switch c.Store.Driver {
	case DriverMemory:
	case DriverCSV, DriverSQLite:
		if c.Store.Path == "" && c.Store.Dir == "" {
			return &ConfigError{Field: "store.dir", Message: "store directory cannot be empty"}
		}
	case DriverPostgres:
		if c.Store.PostgresURL == "" {
			return &ConfigError{Field: "store.postgres_url", Message: "postgres url is required by the postgres driver"}
		}
	default:
		return &ConfigError{Field: "store.driver", Message: "driver must be one of " + strings.Join(Drivers, ", ")}
	}

	// Validate time configuration
	if _, err := c.GetLocation(); err != nil {
		return &ConfigError{Field: "time.zone", Message: "unknown time zone " + c.Time.Zone}
	}

	// Validate capacity configuration
	if c.Capacity.Weekly <= 0 {
		return &ConfigError{Field: "capacity.weekly", Message: "weekly capacity must be positive"}
	}
	if _, err := c.GetHolidays(); err != nil {
		return &ConfigError{Field: "capacity.holidays", Message: "holidays must be dates formatted as YYYY-MM-DD"}
	}

	// Validate server configuration
	if c.Server.Address == "" {
		return &ConfigError{Field: "server.address", Message: "server address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.timeouts", Message: "server timeouts must be positive"}
	}

	// Validate notify configuration
	if len(c.Notify.KafkaBrokers) > 0 && c.Notify.Topic == "" {
		return &ConfigError{Field: "notify.topic", Message: "kafka topic cannot be empty when brokers are set"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
