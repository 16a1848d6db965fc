package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"activity-sampler/internal/api"
	"activity-sampler/internal/cli"
	"activity-sampler/internal/config"
	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
	"activity-sampler/internal/notify"
	"activity-sampler/internal/observability"
	"activity-sampler/internal/services"
)

// newBackend wires the configured event store, its listeners and the API.
func newBackend(ctx context.Context, cfg *config.Config) (*cli.Backend, error) {
	logger := newLogger(cfg)

	loc, err := cfg.GetLocation()
	if err != nil {
		return nil, err
	}
	holidays, err := cfg.GetHolidays()
	if err != nil {
		return nil, err
	}

	store, err := config.CreateEventStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create event store: %w", err)
	}
	logging.Debugf("event store %s ready\n", cfg.Store.Driver)

	observable := eventstore.NewObservable(store, logger)
	observable.Subscribe(observability.RecordActivity)
	closers := []func() error{observable.Close}

	if len(cfg.Notify.KafkaBrokers) > 0 {
		publisher := notify.NewKafkaPublisher(cfg.Notify.KafkaBrokers, cfg.Notify.Topic)
		observable.Subscribe(publisher.Listener())
		closers = append(closers, publisher.Close)
		logger.Debug("kafka notifications enabled", "brokers", cfg.Notify.KafkaBrokers, "topic", cfg.Notify.Topic)
	}

	clock := domain.NewSystemClock(loc)
	capacity := services.Capacity{Weekly: cfg.Capacity.Weekly, Holidays: holidays}

	return &cli.Backend{
		API:    api.New(observable, clock, capacity, logger),
		Clock:  clock,
		Logger: logger,
		Close:  closeAll(closers),
	}, nil
}

// newLogger logs everything when verbose and only problems otherwise
func newLogger(cfg *config.Config) logging.Logger {
	if cfg.Application.Verbose {
		return logging.NewJSONLogger(os.Stderr, logging.DebugEnabled())
	}
	return logging.NewQuietLogger(os.Stderr)
}

func closeAll(closers []func() error) func() error {
	return func() error {
		var errs []error
		for _, closer := range closers {
			if err := closer(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}
