package services

import (
	"fmt"
	"time"

	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
)

// parseWeekStart parses and validates a week anchor date; schedules are
// always anchored on a Monday
func parseWeekStart(weekStart string) (time.Time, error) {
	start, err := clock.ParseDate(weekStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week start: %w", err)
	}
	if start.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("week start %s is a %s, not a Monday", weekStart, start.Weekday())
	}
	return start, nil
}

// weekDates returns the seven ISO dates of the week starting at weekStart
func weekDates(weekStart time.Time) []string {
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = clock.FormatDate(weekStart.AddDate(0, 0, i))
	}
	return dates
}

// workerIDs extracts worker IDs from a roster (useful for logging)
func workerIDs(workers []model.Worker) []string {
	ids := make([]string, len(workers))
	for i, w := range workers {
		ids[i] = w.ID
	}
	return ids
}
