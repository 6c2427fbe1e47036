package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/core/services"
)

// WeeklyHoursCmd creates the weeklyHours command
func WeeklyHoursCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weeklyHours",
		Short: "Show scheduled vs target hours per worker for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")

			entries, err := services.WeeklyHours(app.Ctx, app.Database, app.Cfg, app.Logger, week)
			if err != nil {
				return fmt.Errorf("weekly hours failed: %w", err)
			}

			ids := make([]string, 0, len(entries))
			for id := range entries {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			fmt.Printf("\n⏱  Weekly hours for week of %s\n\n", week)
			for _, id := range ids {
				e := entries[id]
				fmt.Printf("  %-20s %5.1fh / %5.1fh  %s\n",
					e.WorkerID, e.ScheduledHours, e.TargetHours, statusMark(e.Status))
			}

			return nil
		},
	}

	cmd.Flags().String("week", "", "Week start date (Monday, YYYY-MM-DD)")
	cmd.MarkFlagRequired("week")

	return cmd
}

func statusMark(status model.HoursStatus) string {
	switch status {
	case model.StatusUnder:
		return "⬇ under target"
	case model.StatusOver:
		return "⬆ over target"
	default:
		return "✅ on target"
	}
}
