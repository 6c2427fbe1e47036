package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhaglund/storeshift/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewSchedule",
		Short: "Show the consolidated day-by-day view of a week's schedule",
		Long:  "Merge each worker's shifts into continuous work blocks with breaks, and flag coverage problems per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")

			days, err := services.ConsolidateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, week)
			if err != nil {
				return fmt.Errorf("view failed: %w", err)
			}

			fmt.Printf("\n📅 Week of %s\n", week)
			for _, day := range days {
				fmt.Printf("\n%s (%s)\n", day.Date, day.Weekday)

				for _, block := range day.Blocks {
					name := block.WorkerName
					if name == "" {
						name = block.WorkerID
					}
					categories := make([]string, len(block.Categories))
					for i, c := range block.Categories {
						categories[i] = string(c)
					}
					fmt.Printf("  %s-%s  %-20s %.1fh [%s]\n",
						block.Start, block.End, name, block.TotalHours, strings.Join(categories, ", "))
					for _, gap := range block.Gaps {
						fmt.Printf("           break %s-%s (%.2fh)\n", gap.Start, gap.End, gap.Hours)
					}
				}

				if day.UnassignedRequired > 0 {
					fmt.Printf("  ⚠️  %d required slots unassigned\n", day.UnassignedRequired)
				}
				if day.ThinPeakCoverage {
					fmt.Printf("  ⚠️  thin coverage during the peak window\n")
				}
			}

			return nil
		},
	}

	cmd.Flags().String("week", "", "Week start date (Monday, YYYY-MM-DD)")
	cmd.MarkFlagRequired("week")

	return cmd
}
