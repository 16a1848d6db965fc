package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitPeriod(t *testing.T) {
	today := MustParseDate("2024-02-14") // a Wednesday in a leap year

	tests := []struct {
		name string
		unit PeriodUnit
		from string
		to   string
	}{
		{"day", PeriodDay, "2024-02-14", "2024-02-14"},
		{"week starts Monday", PeriodWeek, "2024-02-12", "2024-02-18"},
		{"month ends on leap day", PeriodMonth, "2024-02-01", "2024-02-29"},
		{"quarter", PeriodQuarter, "2024-01-01", "2024-03-31"},
		{"half-year", PeriodHalfYear, "2024-01-01", "2024-06-30"},
		{"year", PeriodYear, "2024-01-01", "2024-12-31"},
		{"all-time", PeriodAllTime, "0000-01-01", "9999-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := InitPeriod(tt.unit, today)

			assert.Equal(t, tt.from, period.From.String())
			assert.Equal(t, tt.to, period.To.String())
			assert.Equal(t, tt.unit, period.Unit)
			assert.True(t, period.IsCurrent)
		})
	}
}

func TestInitPeriod_WeekOnSunday(t *testing.T) {
	period := InitPeriod(PeriodWeek, MustParseDate("2024-02-18"))

	assert.Equal(t, "2024-02-12", period.From.String())
	assert.Equal(t, "2024-02-18", period.To.String())
}

func TestPeriod_Next(t *testing.T) {
	tests := []struct {
		name  string
		unit  PeriodUnit
		today string
		from  string
		to    string
	}{
		{"day crosses month", PeriodDay, "2024-01-31", "2024-02-01", "2024-02-01"},
		{"week crosses year", PeriodWeek, "2024-12-25", "2024-12-30", "2025-01-05"},
		{"month lands on 29th", PeriodMonth, "2024-01-31", "2024-02-01", "2024-02-29"},
		{"month lands on 30th", PeriodMonth, "2024-03-31", "2024-04-01", "2024-04-30"},
		{"quarter crosses year", PeriodQuarter, "2024-11-15", "2025-01-01", "2025-03-31"},
		{"half-year", PeriodHalfYear, "2024-03-01", "2024-07-01", "2024-12-31"},
		{"year", PeriodYear, "2024-06-01", "2025-01-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := MustParseDate(tt.today)

			next := InitPeriod(tt.unit, today).Next(today)

			assert.Equal(t, tt.from, next.From.String())
			assert.Equal(t, tt.to, next.To.String())
			assert.False(t, next.IsCurrent)
		})
	}
}

func TestPeriod_Previous(t *testing.T) {
	tests := []struct {
		name  string
		unit  PeriodUnit
		today string
		from  string
		to    string
	}{
		{"day crosses year", PeriodDay, "2024-01-01", "2023-12-31", "2023-12-31"},
		{"week", PeriodWeek, "2024-02-14", "2024-02-05", "2024-02-11"},
		{"month lands on 28th", PeriodMonth, "2023-03-10", "2023-02-01", "2023-02-28"},
		{"quarter crosses year", PeriodQuarter, "2024-02-01", "2023-10-01", "2023-12-31"},
		{"half-year crosses year", PeriodHalfYear, "2024-05-01", "2023-07-01", "2023-12-31"},
		{"year", PeriodYear, "2024-06-01", "2023-01-01", "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := MustParseDate(tt.today)

			previous := InitPeriod(tt.unit, today).Previous(today)

			assert.Equal(t, tt.from, previous.From.String())
			assert.Equal(t, tt.to, previous.To.String())
			assert.False(t, previous.IsCurrent)
		})
	}
}

func TestPeriod_RoundTrip(t *testing.T) {
	units := []PeriodUnit{PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodHalfYear, PeriodYear, PeriodAllTime}
	days := []string{"2024-01-01", "2024-02-29", "2024-03-31", "2024-08-31", "2024-12-31", "2025-06-30"}

	for _, unit := range units {
		for _, day := range days {
			t.Run(unit.String()+"/"+day, func(t *testing.T) {
				today := MustParseDate(day)
				start := InitPeriod(unit, today)

				back := start.Next(today).Previous(today)

				assert.Equal(t, start, back)
				assert.True(t, back.Contains(today))
				assert.False(t, back.To.Before(back.From))
			})
		}
	}
}

func TestPeriod_AllTimeNavigation(t *testing.T) {
	today := MustParseDate("2024-02-14")
	period := InitPeriod(PeriodAllTime, today)

	assert.Equal(t, period, period.Next(today))
	assert.Equal(t, period, period.Previous(today))
}

func TestPeriod_ChangeUnit(t *testing.T) {
	today := MustParseDate("2024-05-20")
	period := InitPeriod(PeriodDay, today).Previous(today)

	changed := period.ChangeUnit(PeriodQuarter, today)

	assert.Equal(t, "2024-04-01", changed.From.String())
	assert.Equal(t, "2024-06-30", changed.To.String())
	assert.True(t, changed.IsCurrent)
}

func TestPeriod_IsCurrentTracksToday(t *testing.T) {
	period := InitPeriod(PeriodMonth, MustParseDate("2024-05-20"))

	next := period.Next(MustParseDate("2024-06-03"))

	assert.True(t, next.IsCurrent)
	assert.Equal(t, 30, next.Days())
}

func TestParsePeriodUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected PeriodUnit
		wantErr  bool
	}{
		{"day", PeriodDay, false},
		{"Week", PeriodWeek, false},
		{" month ", PeriodMonth, false},
		{"quarter", PeriodQuarter, false},
		{"half-year", PeriodHalfYear, false},
		{"year", PeriodYear, false},
		{"all-time", PeriodAllTime, false},
		{"fortnight", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			unit, err := ParsePeriodUnit(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, unit)
		})
	}
}

func TestPeriod_JSON(t *testing.T) {
	period := InitPeriod(PeriodWeek, MustParseDate("2024-02-14"))

	data, err := json.Marshal(period)
	require.NoError(t, err)

	assert.JSONEq(t, `{"from":"2024-02-12","to":"2024-02-18","unit":"week","isCurrent":true}`, string(data))
}
