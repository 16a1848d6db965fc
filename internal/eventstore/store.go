package eventstore

import (
	"context"
	"io"
	"iter"
	"sync"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/logging"
)

// EventStore is the append-only log of "activity logged" events.
//
// Replay yields raw records oldest first. When the underlying storage does
// not exist yet the sequence is empty. Any other failure is yielded once as
// a storage error and ends the sequence. Each call starts a fresh pass.
type EventStore interface {
	Record(ctx context.Context, activity domain.Activity) error
	Replay(ctx context.Context) iter.Seq2[Record, error]
}

// Listener is notified after an activity was recorded.
type Listener func(ctx context.Context, activity domain.Activity) error

// Observable decorates a store with "activity recorded" notifications.
type Observable struct {
	store  EventStore
	logger logging.Logger

	mu        sync.RWMutex
	listeners []Listener
}

// NewObservable wraps store. A nil logger discards listener failures.
func NewObservable(store EventStore, logger logging.Logger) *Observable {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Observable{store: store, logger: logger}
}

// Subscribe registers l for every subsequent successful Record.
func (o *Observable) Subscribe(l Listener) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, l)
}

// Record appends activity and then notifies listeners. Listener errors are
// logged and never returned.
func (o *Observable) Record(ctx context.Context, activity domain.Activity) error {
	if err := o.store.Record(ctx, activity); err != nil {
		return err
	}

	o.mu.RLock()
	listeners := append([]Listener(nil), o.listeners...)
	o.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener(ctx, activity); err != nil {
			o.logger.Warn("activity recorded listener failed", "error", err, "task", activity.Task)
		}
	}
	return nil
}

func (o *Observable) Replay(ctx context.Context) iter.Seq2[Record, error] {
	return o.store.Replay(ctx)
}

// Close closes the wrapped store when it holds resources.
func (o *Observable) Close() error {
	return Close(o.store)
}

// Close releases store resources if the store implements io.Closer.
func Close(store EventStore) error {
	if closer, ok := store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
