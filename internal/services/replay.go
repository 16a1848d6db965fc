package services

import (
	"context"
	"fmt"
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/errors"
	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/logging"
	"activity-sampler/internal/validation"
)

// replayer decodes the full event log for one query run.
type replayer struct {
	store   eventstore.EventStore
	decoder *validation.ActivityRecordDecoder
	clock   domain.Clock
	logger  logging.Logger
}

func newReplayer(store eventstore.EventStore, clock domain.Clock, logger logging.Logger) replayer {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return replayer{
		store:   store,
		decoder: validation.NewActivityRecordDecoder(),
		clock:   clock,
		logger:  logger,
	}
}

// zone returns the query zone or the clock's zone.
func (r replayer) zone(loc *time.Location) *time.Location {
	return domain.ResolveZone(r.clock, loc)
}

// today returns the query date or the clock's date in loc.
func (r replayer) today(today domain.Date, loc *time.Location) domain.Date {
	return domain.ResolveToday(r.clock, today, loc)
}

// bounds fills unset bounds from the month containing today.
func (r replayer) bounds(from, to domain.Date, loc *time.Location) (domain.Date, domain.Date) {
	if !from.IsZero() && !to.IsZero() {
		return from, to
	}
	month := domain.InitPeriod(domain.PeriodMonth, r.today(domain.Date{}, loc))
	if from.IsZero() {
		from = month.From
	}
	if to.IsZero() {
		to = month.To
	}
	return from, to
}

// activities replays and decodes every event into loc. The first invalid
// record or storage failure aborts the replay.
func (r replayer) activities(ctx context.Context, loc *time.Location) ([]domain.Activity, error) {
	var activities []domain.Activity
	index := 0
	for record, err := range r.store.Replay(ctx) {
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			return nil, errors.StoreFailure("replay activity log", err)
		}

		activity, err := r.decoder.Decode(record, loc)
		if err != nil {
			r.logger.Warn("invalid activity record", "record", index, "error", err)
			return nil, errors.NewInvalidRecordError(index, err)
		}
		activities = append(activities, activity)
		index++
	}

	logging.Debugf("replayed %d activities\n", len(activities))
	return activities, nil
}

func checkRange(from, to domain.Date) error {
	if to.Before(from) {
		return errors.NewInvalidInputError("to", to.String(), fmt.Sprintf("must not be before %s", from))
	}
	return nil
}
