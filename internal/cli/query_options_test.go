package cli

import (
	"testing"
	"time"

	"activity-sampler/internal/domain"
	apperrors "activity-sampler/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeOptions_Resolve(t *testing.T) {
	clock := domain.NewFixedClock(testNow, time.UTC)

	tests := []struct {
		name         string
		opts         RangeOptions
		expectedFrom domain.Date
		expectedTo   domain.Date
		wantErr      bool
	}{
		{
			name: "should leave bounds unset without flags",
			opts: RangeOptions{},
		},
		{
			name:         "should use the current period",
			opts:         RangeOptions{Period: "week"},
			expectedFrom: domain.MustParseDate("2025-08-25"),
			expectedTo:   domain.MustParseDate("2025-08-31"),
		},
		{
			name:         "should move back by offset",
			opts:         RangeOptions{Period: "month", Offset: -1},
			expectedFrom: domain.MustParseDate("2025-07-01"),
			expectedTo:   domain.MustParseDate("2025-07-31"),
		},
		{
			name:         "should move forward by offset",
			opts:         RangeOptions{Period: "quarter", Offset: 1, Today: "2025-02-10"},
			expectedFrom: domain.MustParseDate("2025-04-01"),
			expectedTo:   domain.MustParseDate("2025-06-30"),
		},
		{
			name:         "should let explicit bounds override the period",
			opts:         RangeOptions{Period: "month", From: "2025-08-15"},
			expectedFrom: domain.MustParseDate("2025-08-15"),
			expectedTo:   domain.MustParseDate("2025-08-31"),
		},
		{
			name:         "should use explicit bounds alone",
			opts:         RangeOptions{From: "2025-08-04", To: "2025-08-05"},
			expectedFrom: domain.MustParseDate("2025-08-04"),
			expectedTo:   domain.MustParseDate("2025-08-05"),
		},
		{
			name:    "should reject an unknown period",
			opts:    RangeOptions{Period: "fortnight"},
			wantErr: true,
		},
		{
			name:    "should reject an invalid reference day",
			opts:    RangeOptions{Period: "day", Today: "tomorrow"},
			wantErr: true,
		},
		{
			name:    "should reject an invalid bound",
			opts:    RangeOptions{To: "2025-08"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := tt.opts.resolve(clock)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFrom, from)
			assert.Equal(t, tt.expectedTo, to)
		})
	}
}

func TestFilterOptions_Categories(t *testing.T) {
	tests := []struct {
		name     string
		opts     FilterOptions
		expected []string
	}{
		{name: "should apply no filter by default", opts: FilterOptions{}, expected: nil},
		{
			name:     "should drop blank categories",
			opts:     FilterOptions{Categories: []string{"Feature", " "}},
			expected: []string{"Feature"},
		},
		{
			name:     "should add the empty category",
			opts:     FilterOptions{Categories: []string{"Rework"}, Uncategorized: true},
			expected: []string{"Rework", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.categories())
		})
	}
}

func TestFilterOptions_Zone(t *testing.T) {
	t.Run("should return nil without zone", func(t *testing.T) {
		loc, err := FilterOptions{}.zone()
		require.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("should load a named zone", func(t *testing.T) {
		loc, err := FilterOptions{TimeZone: "Europe/Berlin"}.zone()
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", loc.String())
	})

	t.Run("should reject an unknown zone", func(t *testing.T) {
		_, err := FilterOptions{TimeZone: "Mars/Olympus"}.zone()
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
	})
}
