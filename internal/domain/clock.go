package domain

import "time"

// Clock supplies the current instant and the default time zone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// SystemClock reads the wall clock.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock in loc, or time.Local when loc is nil.
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return SystemClock{loc: loc}
}

func (c SystemClock) Now() time.Time           { return time.Now().In(c.Location()) }
func (c SystemClock) Location() *time.Location { return c.loc }

// FixedClock always returns the same instant until moved with Add or Set.
type FixedClock struct {
	instant time.Time
	loc     *time.Location
}

// NewFixedClock returns a clock stopped at instant. A nil loc uses the
// instant's own location.
func NewFixedClock(instant time.Time, loc *time.Location) *FixedClock {
	if loc == nil {
		loc = instant.Location()
	}
	return &FixedClock{instant: instant, loc: loc}
}

func (c *FixedClock) Now() time.Time           { return c.instant.In(c.loc) }
func (c *FixedClock) Location() *time.Location { return c.loc }

// Add moves the clock by d.
func (c *FixedClock) Add(d time.Duration) {
	c.instant = c.instant.Add(d)
}

// Set moves the clock to instant.
func (c *FixedClock) Set(instant time.Time) {
	c.instant = instant
}

// Today returns the current date of c in its own zone.
func Today(c Clock) Date {
	return DateOf(c.Now().In(c.Location()))
}

// ResolveZone returns loc, falling back to the clock's zone.
func ResolveZone(c Clock, loc *time.Location) *time.Location {
	if loc != nil {
		return loc
	}
	return c.Location()
}

// ResolveToday returns today, falling back to the clock's date in loc.
func ResolveToday(c Clock, today Date, loc *time.Location) Date {
	if !today.IsZero() {
		return today
	}
	return DateOf(c.Now().In(ResolveZone(c, loc)))
}
