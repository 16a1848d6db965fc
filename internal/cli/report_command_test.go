package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("should report hours per task in range", func(t *testing.T) {
		app, out, _ := setupTestApp(t, weekActivities()...)
		cmd := NewReportCommand(app, &ReportOptions{
			Range: RangeOptions{From: "2025-08-25", To: "2025-08-29"},
			Scope: "tasks",
		})

		require.NoError(t, cmd.Execute(ctx, nil))

		output := out.String()
		assert.Contains(t, output, "Report by tasks, 2025-08-25 to 2025-08-29")
		assert.Contains(t, output, "Task A")
		assert.Contains(t, output, "5.00h")
		assert.Contains(t, output, "Task B")
		assert.Contains(t, output, "1.50h")
		assert.Contains(t, output, "6.50h")
	})

	t.Run("should default to the current month", func(t *testing.T) {
		app, out, _ := setupTestApp(t, weekActivities()...)
		cmd := NewReportCommand(app, &ReportOptions{})

		require.NoError(t, cmd.Execute(ctx, nil))

		assert.Contains(t, out.String(), "Report by clients, 2025-08-01 to 2025-08-31")
		assert.Contains(t, out.String(), "ACME Ltd.")
	})

	t.Run("should report a previous period", func(t *testing.T) {
		app, out, _ := setupTestApp(t, weekActivities()...)
		cmd := NewReportCommand(app, &ReportOptions{
			Range: RangeOptions{Period: "week", Offset: -1, Today: "2025-08-27"},
		})

		require.NoError(t, cmd.Execute(ctx, nil))

		assert.Contains(t, out.String(), "2025-08-18 to 2025-08-24")
		assert.Contains(t, out.String(), "No activities found")
	})

	t.Run("should reject an unknown scope", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		cmd := NewReportCommand(app, &ReportOptions{Scope: "teams"})

		err := cmd.Execute(ctx, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query report: unknown report scope")
	})

	t.Run("should reject an unknown time zone", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		cmd := NewReportCommand(app, &ReportOptions{Filter: FilterOptions{TimeZone: "Mars/Olympus"}})

		err := cmd.Execute(ctx, nil)

		require.Error(t, err)
		assert.Equal(t, "failed to query report: invalid input for zone: unknown time zone", err.Error())
	})
}
