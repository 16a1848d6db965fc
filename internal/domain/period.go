package domain

import (
	"fmt"
	"strings"
	"time"
)

// PeriodUnit is the navigable length of a Period.
type PeriodUnit int

const (
	PeriodDay PeriodUnit = iota
	PeriodWeek
	PeriodMonth
	PeriodQuarter
	PeriodHalfYear
	PeriodYear
	PeriodAllTime
)

var periodUnitNames = map[PeriodUnit]string{
	PeriodDay:      "day",
	PeriodWeek:     "week",
	PeriodMonth:    "month",
	PeriodQuarter:  "quarter",
	PeriodHalfYear: "half-year",
	PeriodYear:     "year",
	PeriodAllTime:  "all-time",
}

func (u PeriodUnit) String() string {
	if name, ok := periodUnitNames[u]; ok {
		return name
	}
	return "unknown"
}

// ParsePeriodUnit accepts day, week, month, quarter, half-year, year and
// all-time, case-insensitively.
func ParsePeriodUnit(s string) (PeriodUnit, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for unit, name := range periodUnitNames {
		if name == normalized {
			return unit, nil
		}
	}
	return 0, fmt.Errorf("unknown period unit %q, expected one of day, week, month, quarter, half-year, year, all-time", s)
}

var (
	// AllTimeFrom and AllTimeTo bound the all-time period.
	AllTimeFrom = Date{Year: 0, Month: 1, Day: 1}
	AllTimeTo   = Date{Year: 9999, Month: 12, Day: 31}
)

// Period is a calendar-aligned inclusive date range.
type Period struct {
	From      Date       `json:"from"`
	To        Date       `json:"to"`
	Unit      PeriodUnit `json:"unit"`
	IsCurrent bool       `json:"isCurrent"`
}

// InitPeriod returns the period of the given unit that contains today.
func InitPeriod(unit PeriodUnit, today Date) Period {
	var from, to Date
	switch unit {
	case PeriodDay:
		from, to = today, today
	case PeriodWeek:
		from = today.Monday()
		to = from.AddDays(6)
	case PeriodMonth:
		from, to = monthSpan(today.Year, today.Month, 1)
	case PeriodQuarter:
		from, to = monthSpan(today.Year, alignMonth(today.Month, 3), 3)
	case PeriodHalfYear:
		from, to = monthSpan(today.Year, alignMonth(today.Month, 6), 6)
	case PeriodYear:
		from, to = monthSpan(today.Year, 1, 12)
	default:
		unit = PeriodAllTime
		from, to = AllTimeFrom, AllTimeTo
	}
	return newPeriod(from, to, unit, today)
}

// Next returns the following period of the same unit.
func (p Period) Next(today Date) Period {
	return p.shift(1, today)
}

// Previous returns the preceding period of the same unit.
func (p Period) Previous(today Date) Period {
	return p.shift(-1, today)
}

// ChangeUnit discards the current range and starts over with unit.
func (p Period) ChangeUnit(unit PeriodUnit, today Date) Period {
	return InitPeriod(unit, today)
}

// Contains reports whether d lies within the period.
func (p Period) Contains(d Date) bool {
	return d.Between(p.From, p.To)
}

// Days returns the number of days in the period.
func (p Period) Days() int {
	return p.To.DaysSince(p.From) + 1
}

func (p Period) shift(direction int, today Date) Period {
	var from, to Date
	switch p.Unit {
	case PeriodDay:
		from = p.From.AddDays(direction)
		to = from
	case PeriodWeek:
		from = p.From.AddDays(7 * direction)
		to = from.AddDays(6)
	case PeriodMonth:
		from, to = monthSpan(p.From.Year, p.From.Month+time.Month(direction), 1)
	case PeriodQuarter:
		from, to = monthSpan(p.From.Year, p.From.Month+time.Month(3*direction), 3)
	case PeriodHalfYear:
		from, to = monthSpan(p.From.Year, p.From.Month+time.Month(6*direction), 6)
	case PeriodYear:
		from, to = monthSpan(p.From.Year+direction, 1, 12)
	default:
		from, to = p.From, p.To
	}
	return newPeriod(from, to, p.Unit, today)
}

func newPeriod(from, to Date, unit PeriodUnit, today Date) Period {
	return Period{
		From:      from,
		To:        to,
		Unit:      unit,
		IsCurrent: today.Between(from, to),
	}
}

// monthSpan returns the first day of the (normalized) start month and the
// last day of the month months-1 later.
func monthSpan(year int, month time.Month, months int) (Date, Date) {
	from := NewDate(year, month, 1)
	to := NewDate(from.Year, from.Month+time.Month(months), 0)
	return from, to
}

// alignMonth returns the first month of the block of size months containing m.
func alignMonth(m time.Month, size int) time.Month {
	return time.Month((int(m)-1)/size*size + 1)
}

func (u PeriodUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *PeriodUnit) UnmarshalText(data []byte) error {
	parsed, err := ParsePeriodUnit(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
