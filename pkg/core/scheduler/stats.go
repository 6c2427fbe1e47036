package scheduler

import (
	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
)

// DefaultHoursTolerance is the band around target hours inside which a
// worker's week counts as on target
const DefaultHoursTolerance = 0.10

// Stats aggregates a schedule's shift list into schedule-wide totals
func Stats(schedule model.Schedule) (model.ScheduleStats, error) {
	stats := model.ScheduleStats{TotalShifts: len(schedule.Shifts)}
	workers := make(map[string]bool)

	for _, s := range schedule.Shifts {
		hours, err := clock.HoursBetween(s.Start, s.End)
		if err != nil {
			return model.ScheduleStats{}, err
		}
		stats.TotalHours += hours

		if s.Assigned() {
			stats.AssignedShifts++
			workers[s.WorkerID] = true
		} else {
			stats.UnassignedShifts++
		}
	}

	stats.WorkerCount = len(workers)
	if stats.WorkerCount > 0 {
		assignedHours := 0.0
		for _, s := range schedule.Shifts {
			if !s.Assigned() {
				continue
			}
			hours, err := clock.HoursBetween(s.Start, s.End)
			if err != nil {
				return model.ScheduleStats{}, err
			}
			assignedHours += hours
		}
		stats.AvgHoursPerWorker = assignedHours / float64(stats.WorkerCount)
	}

	return stats, nil
}

// WeeklyHours computes per-worker scheduled hours against target for every
// worker in the roster, plus any worker referenced by the schedule.
// fullTimeHours is the 100% weekly baseline; tolerance is the on-target
// band as a fraction of target.
func WeeklyHours(schedule model.Schedule, workers []model.Worker, fullTimeHours, tolerance float64) (map[string]model.WeeklyHoursEntry, error) {
	scheduled := make(map[string]float64)
	for _, s := range schedule.Shifts {
		if !s.Assigned() {
			continue
		}
		hours, err := clock.HoursBetween(s.Start, s.End)
		if err != nil {
			return nil, err
		}
		scheduled[s.WorkerID] += hours
	}

	percent := make(map[string]int)
	for _, w := range workers {
		percent[w.ID] = w.WorkPercent
	}

	entries := make(map[string]model.WeeklyHoursEntry)
	add := func(workerID string) {
		target := float64(percent[workerID]) / 100 * fullTimeHours
		entries[workerID] = model.WeeklyHoursEntry{
			WorkerID:       workerID,
			ScheduledHours: scheduled[workerID],
			TargetHours:    target,
			Status:         hoursStatus(scheduled[workerID], target, tolerance),
		}
	}

	for _, w := range workers {
		add(w.ID)
	}
	for workerID := range scheduled {
		if _, ok := entries[workerID]; !ok {
			add(workerID)
		}
	}

	return entries, nil
}

func hoursStatus(scheduled, target, tolerance float64) model.HoursStatus {
	band := target * tolerance
	switch {
	case scheduled < target-band:
		return model.StatusUnder
	case scheduled > target+band:
		return model.StatusOver
	default:
		return model.StatusTarget
	}
}
