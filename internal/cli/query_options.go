package cli

import (
	"strings"
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/errors"

	"github.com/spf13/pflag"
)

// RangeOptions select the days of a report, timesheet or burn-up chart.
// Period and Offset pick a calendar period relative to today; From and To
// override its bounds. Nothing set leaves the bounds to the query default.
type RangeOptions struct {
	From   string
	To     string
	Period string
	Offset int
	Today  string
}

func (o *RangeOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.From, "from", "", "First day, YYYY-MM-DD")
	flags.StringVar(&o.To, "to", "", "Last day, YYYY-MM-DD")
	flags.StringVar(&o.Period, "period", "", "Period unit: day, week, month, quarter, half-year, year or all-time")
	flags.IntVar(&o.Offset, "offset", 0, "Periods to move from the current one, e.g. -1 for the previous period")
	flags.StringVar(&o.Today, "today", "", "Reference day for --period, YYYY-MM-DD (default today)")
}

// resolve returns the selected bounds. Zero dates mean unset.
func (o RangeOptions) resolve(clock domain.Clock) (domain.Date, domain.Date, error) {
	var from, to domain.Date

	if o.Period != "" {
		unit, err := domain.ParsePeriodUnit(o.Period)
		if err != nil {
			return from, to, errors.NewInvalidInputError("period", o.Period, err.Error())
		}
		today := domain.Today(clock)
		if o.Today != "" {
			if today, err = parseDateOption("today", o.Today); err != nil {
				return from, to, err
			}
		}
		period := domain.InitPeriod(unit, today)
		for i := 0; i < o.Offset; i++ {
			period = period.Next(today)
		}
		for i := 0; i > o.Offset; i-- {
			period = period.Previous(today)
		}
		from, to = period.From, period.To
	}

	if o.From != "" {
		d, err := parseDateOption("from", o.From)
		if err != nil {
			return from, to, err
		}
		from = d
	}
	if o.To != "" {
		d, err := parseDateOption("to", o.To)
		if err != nil {
			return from, to, err
		}
		to = d
	}
	return from, to, nil
}

// FilterOptions select categories and the evaluation time zone.
type FilterOptions struct {
	Categories    []string
	Uncategorized bool
	TimeZone      string
}

func (o *FilterOptions) addZoneFlag(flags *pflag.FlagSet) {
	flags.StringVar(&o.TimeZone, "zone", "", "IANA time zone to evaluate dates in (default configured zone)")
}

func (o *FilterOptions) addFlags(flags *pflag.FlagSet) {
	o.addZoneFlag(flags)
	flags.StringSliceVar(&o.Categories, "category", nil, "Only include these categories (repeatable)")
	flags.BoolVar(&o.Uncategorized, "uncategorized", false, "Include activities without category in the filter")
}

// categories returns the category filter. nil means no filter.
func (o FilterOptions) categories() []string {
	var categories []string
	for _, category := range o.Categories {
		if category = strings.TrimSpace(category); category != "" {
			categories = append(categories, category)
		}
	}
	if o.Uncategorized {
		categories = append(categories, "")
	}
	return categories
}

// zone returns the selected location or nil for the clock zone.
func (o FilterOptions) zone() (*time.Location, error) {
	if o.TimeZone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(o.TimeZone)
	if err != nil {
		return nil, errors.NewInvalidInputError("zone", o.TimeZone, "unknown time zone")
	}
	return loc, nil
}

func parseDateOption(field, value string) (domain.Date, error) {
	d, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, errors.NewInvalidInputError(field, value, "expected YYYY-MM-DD")
	}
	return d, nil
}
