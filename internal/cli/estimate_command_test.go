package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("should print probabilities per cycle time", func(t *testing.T) {
		app, out, _ := setupTestApp(t, weekActivities()...)

		require.NoError(t, NewEstimateCommand(app, &EstimateOptions{}).Execute(ctx, nil))

		output := out.String()
		assert.Contains(t, output, "Estimate from 2 tasks")
		assert.Contains(t, output, "50.0%")
		assert.Contains(t, output, "100.0%")
	})

	t.Run("should estimate from the selected categories", func(t *testing.T) {
		app, out, _ := setupTestApp(t, weekActivities()...)
		opts := &EstimateOptions{Filter: FilterOptions{Categories: []string{"Feature"}}}

		require.NoError(t, NewEstimateCommand(app, opts).Execute(ctx, nil))

		assert.Contains(t, out.String(), "Estimate from 1 tasks")
	})

	t.Run("should handle an empty log", func(t *testing.T) {
		app, out, _ := setupTestApp(t)

		require.NoError(t, NewEstimateCommand(app, &EstimateOptions{}).Execute(ctx, nil))

		assert.Contains(t, out.String(), "No tasks found")
	})
}
