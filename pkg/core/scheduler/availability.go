package scheduler

import (
	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
)

// IsAvailable reports whether a worker may be scheduled on a date at all:
// the worker is active, the date is not one of their holidays, and the
// date's weekday is in their availability pattern.
func IsAvailable(w model.Worker, date string) (bool, error) {
	if !w.Active {
		return false, nil
	}
	if w.OnHoliday(date) {
		return false, nil
	}
	day, err := clock.WeekdayOf(date)
	if err != nil {
		return false, err
	}
	return w.CanWorkOn(day), nil
}

// HasConflict reports whether any shift already attributed to the worker on
// the same date overlaps the candidate time range (open-interval test)
func HasConflict(workerID, date, start, end string, shifts []model.Shift) (bool, error) {
	candStart, err := clock.Minutes(start)
	if err != nil {
		return false, err
	}
	candEnd, err := clock.Minutes(end)
	if err != nil {
		return false, err
	}

	for _, s := range shifts {
		if s.WorkerID != workerID || s.Date != date {
			continue
		}
		sStart, err := clock.Minutes(s.Start)
		if err != nil {
			return false, err
		}
		sEnd, err := clock.Minutes(s.End)
		if err != nil {
			return false, err
		}
		if candStart < sEnd && sStart < candEnd {
			return true, nil
		}
	}
	return false, nil
}

// CanAssign combines availability and conflict checks for a candidate shift
func CanAssign(w model.Worker, date, start, end string, shifts []model.Shift) (bool, error) {
	available, err := IsAvailable(w, date)
	if err != nil || !available {
		return false, err
	}
	conflict, err := HasConflict(w.ID, date, start, end, shifts)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}
