package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mhaglund/storeshift/pkg/core/scheduler"
	"github.com/mhaglund/storeshift/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule",
		Short: "Generate the shift schedule for a week",
		Long:  "Derive shift templates from the store hours table and assign workers to them for the week starting at the given Monday",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			balance, _ := cmd.Flags().GetBool("balance")
			weather, _ := cmd.Flags().GetBool("weather")

			app.Logger.Debug("generateSchedule command",
				zap.String("week", week),
				zap.Bool("dry_run", dryRun))

			schedule, err := services.GenerateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, services.GenerateOptions{
				WeekStart:         week,
				PrioritizeBalance: balance,
				WeatherSensitive:  weather,
				DryRun:            dryRun,
			})
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			stats, err := scheduler.Stats(*schedule)
			if err != nil {
				return fmt.Errorf("failed to summarize schedule: %w", err)
			}

			fmt.Printf("\n📅 Schedule for week of %s\n\n", schedule.WeekStart)
			fmt.Printf("Schedule ID: %s\n", schedule.ID)
			fmt.Printf("Shifts:      %d (%d assigned, %d unassigned)\n",
				stats.TotalShifts, stats.AssignedShifts, stats.UnassignedShifts)
			fmt.Printf("Total hours: %.1f across %d workers\n", stats.TotalHours, stats.WorkerCount)
			if dryRun {
				fmt.Printf("Mode:        🧪 DRY RUN (not saved)\n")
			} else {
				fmt.Printf("Status:      ✅ saved to database\n")
			}
			if stats.UnassignedShifts > 0 {
				fmt.Printf("\n⚠️  %d required slots could not be staffed; run viewSchedule for details\n", stats.UnassignedShifts)
			}

			return nil
		},
	}

	cmd.Flags().String("week", "", "Week start date (Monday, YYYY-MM-DD)")
	cmd.MarkFlagRequired("week")
	cmd.Flags().Bool("dry-run", false, "Compute the schedule without saving it")
	cmd.Flags().Bool("balance", false, "Prioritize workload balance (advisory)")
	cmd.Flags().Bool("weather", false, "Weather-sensitive staffing (advisory)")

	return cmd
}
