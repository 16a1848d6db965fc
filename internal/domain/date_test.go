package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-10-12")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2021, Month: time.October, Day: 12}, d)

	_, err = ParseDate("12.10.2021")
	assert.Error(t, err)
}

func TestDate_AddDays(t *testing.T) {
	assert.Equal(t, "2024-03-01", MustParseDate("2024-02-29").AddDays(1).String())
	assert.Equal(t, "2023-12-31", MustParseDate("2024-01-01").AddDays(-1).String())
	assert.Equal(t, "2025-07-30", MustParseDate("2025-08-28").AddDays(-29).String())
}

func TestDate_Monday(t *testing.T) {
	tests := []struct {
		day      string
		expected string
	}{
		{"2025-08-25", "2025-08-25"},
		{"2025-08-29", "2025-08-25"},
		{"2025-08-31", "2025-08-25"},
		{"2025-09-01", "2025-09-01"},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			assert.Equal(t, tt.expected, MustParseDate(tt.day).Monday().String())
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a := MustParseDate("2024-02-14")
	b := MustParseDate("2024-02-15")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Between(a, b))
	assert.False(t, b.Between(AllTimeFrom, a))
}

func TestDate_DaysSince(t *testing.T) {
	assert.Equal(t, 1, MustParseDate("2024-03-01").DaysSince(MustParseDate("2024-02-29")))
	assert.Equal(t, -29, MustParseDate("2025-07-31").DaysSince(MustParseDate("2025-08-29")))
	assert.Equal(t, 3652424, AllTimeTo.DaysSince(AllTimeFrom))
}

func TestDateOf_UsesLocation(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	instant := time.Date(2025, 8, 28, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-08-28", DateOf(instant).String())
	assert.Equal(t, "2025-08-29", DateOf(instant.In(berlin)).String())
}

func TestDate_Text(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalText([]byte("0000-01-01")))
	assert.Equal(t, AllTimeFrom, d)

	text, err := AllTimeTo.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "9999-12-31", string(text))
}
