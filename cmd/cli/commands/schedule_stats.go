package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhaglund/storeshift/pkg/core/services"
)

// ScheduleStatsCmd creates the scheduleStats command
func ScheduleStatsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduleStats",
		Short: "Show aggregate statistics for a week's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")

			stats, err := services.ScheduleStats(app.Ctx, app.Database, app.Logger, week)
			if err != nil {
				return fmt.Errorf("stats failed: %w", err)
			}

			fmt.Printf("\n📊 Schedule statistics for week of %s\n\n", week)
			fmt.Printf("Total shifts:      %d\n", stats.TotalShifts)
			fmt.Printf("Assigned:          %d\n", stats.AssignedShifts)
			fmt.Printf("Unassigned:        %d\n", stats.UnassignedShifts)
			fmt.Printf("Total hours:       %.1f\n", stats.TotalHours)
			fmt.Printf("Workers scheduled: %d\n", stats.WorkerCount)
			if stats.WorkerCount > 0 {
				fmt.Printf("Avg hours/worker:  %.1f\n", stats.AvgHoursPerWorker)
			}

			return nil
		},
	}

	cmd.Flags().String("week", "", "Week start date (Monday, YYYY-MM-DD)")
	cmd.MarkFlagRequired("week")

	return cmd
}
