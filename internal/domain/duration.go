package domain

import (
	"fmt"
	"time"

	"github.com/sosodev/duration"
)

// ParseISODuration parses an ISO-8601 duration such as PT1H30M.
func ParseISODuration(s string) (time.Duration, error) {
	parsed, err := duration.Parse(s)
	if err != nil {
		return 0, err
	}
	if parsed.Negative {
		return 0, fmt.Errorf("duration %q is negative", s)
	}
	return parsed.ToTimeDuration(), nil
}

// FormatISODuration renders d as hours, minutes and seconds, e.g. PT1H or
// PT26H30M. Days are never used so sums stay readable as hours. Negative
// durations get a leading minus sign.
func FormatISODuration(d time.Duration) string {
	negative := d < 0
	if negative {
		d = -d
	}

	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute

	iso := (&duration.Duration{
		Hours:   float64(hours),
		Minutes: float64(minutes),
		Seconds: d.Seconds(),
	}).String()
	if negative && iso != "PT0S" {
		return "-" + iso
	}
	return iso
}
