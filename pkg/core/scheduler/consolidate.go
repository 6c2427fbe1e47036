package scheduler

import (
	"sort"

	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
)

// Gap and coverage thresholds. The defaults are load-bearing; changing them
// changes which warnings a schedule produces.
const (
	// MinReportedGapHours is the shortest break reported between two of a
	// worker's shifts on the same day (15 minutes)
	MinReportedGapHours = 0.25

	// PeakMinCoverage is the concurrent-worker floor sampled across the
	// peak window
	PeakMinCoverage = 2

	// DefaultPeakStart and DefaultPeakEnd bound the late-morning peak
	// window the coverage check samples
	DefaultPeakStart = "11:00"
	DefaultPeakEnd   = "14:00"

	// peakSampleStepMinutes is the sampling interval across the peak window
	peakSampleStepMinutes = 30
)

// CoverageConfig tunes the schedule-wide gap analysis
type CoverageConfig struct {
	MinGapHours     float64
	PeakStart       string
	PeakEnd         string
	PeakMinCoverage int
}

// DefaultCoverageConfig returns the stock thresholds
func DefaultCoverageConfig() CoverageConfig {
	return CoverageConfig{
		MinGapHours:     MinReportedGapHours,
		PeakStart:       DefaultPeakStart,
		PeakEnd:         DefaultPeakEnd,
		PeakMinCoverage: PeakMinCoverage,
	}
}

// Consolidate merges each worker's same-day shifts into continuous work
// blocks with inferred break gaps, and flags per-day coverage problems:
// unassigned required slots and thin staffing across the peak window.
// Days without any shift records produce no summary.
func Consolidate(schedule model.Schedule, workers []model.Worker, cfg CoverageConfig) ([]model.DaySummary, error) {
	names := make(map[string]string, len(workers))
	for _, w := range workers {
		names[w.ID] = w.Name
	}

	byDate := make(map[string][]model.Shift)
	for _, s := range schedule.Shifts {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var summaries []model.DaySummary
	for _, date := range dates {
		summary, err := consolidateDay(date, byDate[date], names, cfg)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func consolidateDay(date string, shifts []model.Shift, names map[string]string, cfg CoverageConfig) (model.DaySummary, error) {
	weekday, err := clock.WeekdayOf(date)
	if err != nil {
		return model.DaySummary{}, err
	}

	summary := model.DaySummary{Date: date, Weekday: weekday}

	byWorker := make(map[string][]model.Shift)
	var workerOrder []string
	for _, s := range shifts {
		if !s.Assigned() {
			if s.Required {
				summary.UnassignedRequired++
			}
			continue
		}
		if _, ok := byWorker[s.WorkerID]; !ok {
			workerOrder = append(workerOrder, s.WorkerID)
		}
		byWorker[s.WorkerID] = append(byWorker[s.WorkerID], s)
	}

	for _, workerID := range workerOrder {
		block, err := mergeWorkerDay(workerID, names[workerID], date, byWorker[workerID], cfg.MinGapHours)
		if err != nil {
			return model.DaySummary{}, err
		}
		summary.Blocks = append(summary.Blocks, block)
	}

	// Deterministic display order: earliest start first, worker ID breaks ties
	sort.SliceStable(summary.Blocks, func(i, j int) bool {
		if summary.Blocks[i].Start != summary.Blocks[j].Start {
			return summary.Blocks[i].Start < summary.Blocks[j].Start
		}
		return summary.Blocks[i].WorkerID < summary.Blocks[j].WorkerID
	})

	thin, err := thinPeakCoverage(shifts, cfg)
	if err != nil {
		return model.DaySummary{}, err
	}
	summary.ThinPeakCoverage = thin

	return summary, nil
}

// mergeWorkerDay collapses one worker's shifts on one date into a single
// block spanning first start to last end. Total hours is the span, not the
// sum of parts, so overlapping or adjacent records count once.
func mergeWorkerDay(workerID, name, date string, shifts []model.Shift, minGapHours float64) (model.ConsolidatedWorkerShift, error) {
	sorted := make([]model.Shift, len(shifts))
	copy(sorted, shifts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	first := sorted[0]
	lastEnd := first.End
	categories := []model.ShiftCategory{first.Category}
	var gaps []model.ShiftGap

	for i := 1; i < len(sorted); i++ {
		s := sorted[i]
		categories = append(categories, s.Category)

		if s.Start > lastEnd {
			gapHours, err := clock.HoursBetween(lastEnd, s.Start)
			if err != nil {
				return model.ConsolidatedWorkerShift{}, err
			}
			if gapHours >= minGapHours {
				gaps = append(gaps, model.ShiftGap{Start: lastEnd, End: s.Start, Hours: gapHours})
			}
		}
		if s.End > lastEnd {
			lastEnd = s.End
		}
	}

	total, err := clock.HoursBetween(first.Start, lastEnd)
	if err != nil {
		return model.ConsolidatedWorkerShift{}, err
	}

	return model.ConsolidatedWorkerShift{
		WorkerID:   workerID,
		WorkerName: name,
		Date:       date,
		Start:      first.Start,
		End:        lastEnd,
		TotalHours: total,
		Categories: categories,
		Gaps:       gaps,
	}, nil
}

// thinPeakCoverage samples the peak window at 30-minute steps and reports
// whether assigned coverage drops below the floor at any sampled instant
func thinPeakCoverage(shifts []model.Shift, cfg CoverageConfig) (bool, error) {
	peakStart, err := clock.Minutes(cfg.PeakStart)
	if err != nil {
		return false, err
	}
	peakEnd, err := clock.Minutes(cfg.PeakEnd)
	if err != nil {
		return false, err
	}

	for t := peakStart; t < peakEnd; t += peakSampleStepMinutes {
		covering := 0
		for _, s := range shifts {
			if !s.Assigned() {
				continue
			}
			start, err := clock.Minutes(s.Start)
			if err != nil {
				return false, err
			}
			end, err := clock.Minutes(s.End)
			if err != nil {
				return false, err
			}
			if start <= t && t < end {
				covering++
			}
		}
		if covering < cfg.PeakMinCoverage {
			return true, nil
		}
	}
	return false, nil
}
