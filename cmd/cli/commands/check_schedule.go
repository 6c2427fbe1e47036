package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhaglund/storeshift/pkg/core/services"
)

// CheckScheduleCmd creates the checkSchedule command
func CheckScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkSchedule",
		Short: "Check whether a week's schedule can be generated",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")

			result, err := services.CheckSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, week)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			fmt.Printf("\n🔍 Staffing check for week of %s\n\n", week)
			if result.CanGenerate {
				fmt.Println("Status: ✅ schedule can be generated")
			} else {
				fmt.Println("Status: ❌ schedule cannot be generated")
			}

			if len(result.Issues) > 0 {
				fmt.Printf("\nIssues (%d):\n", len(result.Issues))
				for _, issue := range result.Issues {
					fmt.Printf("  - %s\n", issue)
				}
			}

			return nil
		},
	}

	cmd.Flags().String("week", "", "Week start date (Monday, YYYY-MM-DD)")
	cmd.MarkFlagRequired("week")

	return cmd
}
