package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhaglund/storeshift/pkg/core/clock"
)

// ListWorkersCmd creates the listWorkers command
func ListWorkersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listWorkers",
		Short: "List all active workers and their availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := app.Database.ListActiveWorkers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list workers: %w", err)
			}

			fmt.Printf("\nFound %d active workers:\n\n", len(workers))
			for _, w := range workers {
				days := make([]string, len(w.AvailableDays))
				for i, d := range w.AvailableDays {
					days[i] = clock.WeekdayName(d)
				}
				holidayInfo := ""
				if len(w.Holidays) > 0 {
					holidayInfo = fmt.Sprintf(" [%d holidays]", len(w.Holidays))
				}
				fmt.Printf("- %s (%s) - %d%% - %s%s\n",
					w.Name,
					w.ID,
					w.WorkPercent,
					strings.Join(days, ", "),
					holidayInfo,
				)
			}

			return nil
		},
	}
}
