package config

import (
	"strconv"
	"strings"
	"time"

	"activity-sampler/internal/domain"
	apperrors "activity-sampler/internal/errors"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, configurationError(err)
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, configurationError(err)
	}

	return l.config, nil
}

// configurationError lifts a ConfigError into the application error
// taxonomy, keeping it reachable through errors.As.
func configurationError(err error) error {
	if configErr, ok := err.(*ConfigError); ok {
		return apperrors.NewConfigurationError(configErr.Field, configErr)
	}
	return err
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Store overrides
	StoreDriver *string
	StorePath   *string
	PostgresURL *string

	// Time overrides
	TimeZone *string

	// Capacity overrides
	WeeklyCapacity *time.Duration
	Holidays       []string

	// Server overrides
	ServerAddress *string

	// Notify overrides
	KafkaBrokers []string
	KafkaTopic   *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StoreDriver != nil {
		config.Store.Driver = strings.ToLower(*overrides.StoreDriver)
	}
	if overrides.StorePath != nil {
		config.Store.Path = *overrides.StorePath
	}
	if overrides.PostgresURL != nil {
		config.Store.PostgresURL = *overrides.PostgresURL
	}

	if overrides.TimeZone != nil {
		config.Time.Zone = *overrides.TimeZone
	}

	if overrides.WeeklyCapacity != nil {
		config.Capacity.Weekly = *overrides.WeeklyCapacity
	}
	if overrides.Holidays != nil {
		config.Capacity.Holidays = overrides.Holidays
	}

	if overrides.ServerAddress != nil {
		config.Server.Address = *overrides.ServerAddress
	}

	if overrides.KafkaBrokers != nil {
		config.Notify.KafkaBrokers = overrides.KafkaBrokers
	}
	if overrides.KafkaTopic != nil {
		config.Notify.Topic = *overrides.KafkaTopic
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseCapacityWithFallback accepts a Go duration such as 40h or an
// ISO-8601 duration such as PT40H
func ParseCapacityWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	if d, err := domain.ParseISODuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}

// SplitList splits a comma separated list, dropping blank items
func SplitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
