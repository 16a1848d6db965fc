package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsCommand_Execute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		opts     StatisticsOptions
		expected []string
	}{
		{
			name: "should bin working hours of every activity",
			opts: StatisticsOptions{},
			expected: []string{
				"Statistics of working-hours, 3 samples",
				"Duration (days)",
				"0 - 0.5",
				"0.25",
				"Categories: (none), Feature",
			},
		},
		{
			name:     "should filter by category",
			opts:     StatisticsOptions{Filter: FilterOptions{Categories: []string{"Feature"}}},
			expected: []string{"Statistics of working-hours, 2 samples"},
		},
		{
			name:     "should filter activities without category",
			opts:     StatisticsOptions{Filter: FilterOptions{Uncategorized: true}},
			expected: []string{"Statistics of working-hours, 1 samples"},
		},
		{
			name:     "should bin cycle times of every task",
			opts:     StatisticsOptions{Scope: "cycle-times"},
			expected: []string{"Statistics of cycle-times, 2 samples", "Cycle time (days)", "Number of tasks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out, _ := setupTestApp(t, weekActivities()...)
			opts := tt.opts

			require.NoError(t, NewStatisticsCommand(app, &opts).Execute(ctx, nil))

			for _, expected := range tt.expected {
				assert.Contains(t, out.String(), expected)
			}
		})
	}

	t.Run("should reject an unknown scope", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		err := NewStatisticsCommand(app, &StatisticsOptions{Scope: "velocity"}).Execute(ctx, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query statistics: unknown statistics scope")
	})
}
