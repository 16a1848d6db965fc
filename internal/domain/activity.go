package domain

import "time"

// HoursPerPersonDay converts working hours to person-days.
const HoursPerPersonDay = 8

// Activity is one "activity logged" event. DateTime carries the zone the
// event was decoded into.
type Activity struct {
	DateTime time.Time
	Duration time.Duration
	Client   string
	Project  string
	Task     string
	Notes    string
	Category string
}

// Date returns the local date of the activity.
func (a Activity) Date() Date {
	return DateOf(a.DateTime)
}

// PersonDays returns the duration expressed in 8-hour days.
func (a Activity) PersonDays() float64 {
	return a.Duration.Hours() / HoursPerPersonDay
}

// In returns a copy with DateTime moved to loc.
func (a Activity) In(loc *time.Location) Activity {
	a.DateTime = a.DateTime.In(loc)
	return a
}
