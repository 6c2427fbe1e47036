package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhaglund/storeshift/pkg/core/services"
)

// DeleteScheduleCmd creates the deleteSchedule command
func DeleteScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deleteSchedule",
		Short: "Delete the stored schedule for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")
			confirmed, _ := cmd.Flags().GetBool("yes")

			if !confirmed {
				return fmt.Errorf("deleting a schedule is destructive; re-run with --yes to confirm")
			}

			if err := services.DeleteSchedule(app.Ctx, app.Database, app.Logger, week); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}

			fmt.Printf("🗑  Deleted schedule for week of %s\n", week)
			return nil
		},
	}

	cmd.Flags().String("week", "", "Week start date (Monday, YYYY-MM-DD)")
	cmd.MarkFlagRequired("week")
	cmd.Flags().Bool("yes", false, "Confirm deletion")

	return cmd
}
