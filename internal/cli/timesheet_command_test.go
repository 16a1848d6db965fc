package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimesheetCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("should print entries, capacity and offset", func(t *testing.T) {
		app, out, _ := setupTestApp(t, weekActivities()...)
		cmd := NewTimesheetCommand(app, &TimesheetOptions{
			Range: RangeOptions{From: "2025-08-25", To: "2025-08-29"},
		})

		require.NoError(t, cmd.Execute(ctx, nil))

		output := out.String()
		assert.Contains(t, output, "Timesheet, 2025-08-25 to 2025-08-29")
		assert.Contains(t, output, "2025-08-26")
		assert.Contains(t, output, "Task B")
		assert.Contains(t, output, "6.50h")
		assert.Contains(t, output, "40.00h")
		assert.Contains(t, output, "-33.50h")
	})

	t.Run("should print capacity for an empty range", func(t *testing.T) {
		app, out, _ := setupTestApp(t)
		cmd := NewTimesheetCommand(app, &TimesheetOptions{
			Range: RangeOptions{Period: "day", Today: "2025-08-29"},
		})

		require.NoError(t, cmd.Execute(ctx, nil))

		assert.Contains(t, out.String(), "No activities found")
		assert.Contains(t, out.String(), "8.00h")
		assert.Contains(t, out.String(), "-8.00h")
	})

	t.Run("should reject an invalid date", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		cmd := NewTimesheetCommand(app, &TimesheetOptions{Range: RangeOptions{From: "2025-02-30"}})

		err := cmd.Execute(ctx, nil)

		require.Error(t, err)
		assert.Equal(t, "failed to query timesheet: invalid input for from: expected YYYY-MM-DD", err.Error())
	})
}
