package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
)

// DefaultFullTimeHours is the weekly hour baseline a 100% worker targets
const DefaultFullTimeHours = 40.0

// DefaultMaxOvertimeHours is the hard ceiling on weekly hours over target.
// A candidate is skipped once an assignment would push them past it, but
// only after the template's minimum coverage has been met.
const DefaultMaxOvertimeHours = 12.0

// Tuning holds the engine's adjustable constants
type Tuning struct {
	FullTimeHours    float64
	MaxOvertimeHours float64
}

// DefaultTuning returns the stock engine tuning
func DefaultTuning() Tuning {
	return Tuning{
		FullTimeHours:    DefaultFullTimeHours,
		MaxOvertimeHours: DefaultMaxOvertimeHours,
	}
}

// Engine assigns workers to template slots across one week. It performs no
// I/O and never mutates its inputs; every run gets a fresh accumulator.
type Engine struct {
	rules  []Rule
	tuning Tuning
}

// NewEngine creates an engine with the given scoring rules, applied in order
func NewEngine(rules []Rule, tuning Tuning) *Engine {
	return &Engine{rules: rules, tuning: tuning}
}

// TargetHours returns a worker's weekly hour target
func (e *Engine) TargetHours(w model.Worker) float64 {
	return float64(w.WorkPercent) / 100 * e.tuning.FullTimeHours
}

// GenerateWeek produces the full shift list for one week. weekStart must be
// a Monday. closedDates suppresses whole days (store closures) on top of the
// store-hours table. Workers are considered in the order given; that order
// is the deterministic tie-break for equal scores.
func (e *Engine) GenerateWeek(
	weekStart time.Time,
	templates map[time.Weekday][]model.ShiftTemplate,
	workers []model.Worker,
	closedDates map[string]bool,
) ([]model.Shift, error) {
	if weekStart.Weekday() != time.Monday {
		return nil, fmt.Errorf("week start %s is not a Monday", clock.FormatDate(weekStart))
	}

	state := newRunState()
	var shifts []model.Shift

	for offset := 0; offset < 7; offset++ {
		date := clock.FormatDate(weekStart.AddDate(0, 0, offset))
		if closedDates[date] {
			continue
		}
		day := weekStart.AddDate(0, 0, offset).Weekday()

		for _, tmpl := range orderByPriority(templates[day]) {
			assigned, err := e.fillTemplate(date, tmpl, workers, state, shifts)
			if err != nil {
				return nil, err
			}
			shifts = append(shifts, assigned...)
		}
	}

	return shifts, nil
}

// orderByPriority sorts a day's templates high to low, preserving the
// chronological order within a tier
func orderByPriority(templates []model.ShiftTemplate) []model.ShiftTemplate {
	rank := map[model.Priority]int{
		model.PriorityHigh:   0,
		model.PriorityMedium: 1,
		model.PriorityLow:    2,
	}
	ordered := make([]model.ShiftTemplate, len(templates))
	copy(ordered, templates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rank[ordered[i].Priority] < rank[ordered[j].Priority]
	})
	return ordered
}

// fillTemplate materializes one template instance on one date: filter
// candidates, score, sort, assign up to capacity, and backfill unassigned
// required slots so the output never carries fewer than MinWorkers records.
func (e *Engine) fillTemplate(
	date string,
	tmpl model.ShiftTemplate,
	workers []model.Worker,
	state *runState,
	existing []model.Shift,
) ([]model.Shift, error) {
	shiftHours, err := clock.HoursBetween(tmpl.Start, tmpl.End)
	if err != nil {
		return nil, fmt.Errorf("template %s %s-%s: %w", tmpl.Weekday, tmpl.Start, tmpl.End, err)
	}

	var candidates []model.Worker
	for _, w := range workers {
		if w.WorkPercent <= 0 {
			continue
		}
		ok, err := CanAssign(w, date, tmpl.Start, tmpl.End, existing)
		if err != nil {
			return nil, err
		}
		if ok {
			candidates = append(candidates, w)
		}
	}

	if len(candidates) == 0 {
		return e.unassignedSlots(date, tmpl, tmpl.MinWorkers), nil
	}

	scores := make([]float64, len(candidates))
	for i, w := range candidates {
		scores[i] = e.score(w, tmpl, date, shiftHours, state)
	}

	// Stable sort: equal scores keep candidate input order. This tie-break
	// is observable and part of the determinism contract.
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	toAssign := min(tmpl.MaxWorkers, max(tmpl.MinWorkers, len(candidates)))
	if tmpl.Priority == model.PriorityHigh {
		// High-priority slots fill every position availability allows
		toAssign = min(tmpl.MaxWorkers, len(candidates))
	}

	var out []model.Shift
	seen := make(map[string]bool)
	assigned := 0

	for _, idx := range order {
		if assigned >= toAssign {
			break
		}
		w := candidates[idx]
		if seen[w.ID] {
			continue
		}

		// Hard overtime ceiling, applied only once minimum coverage is met
		overAfter := state.hours[w.ID] + shiftHours - e.TargetHours(w)
		if overAfter > e.tuning.MaxOvertimeHours && assigned >= tmpl.MinWorkers {
			continue
		}

		out = append(out, model.Shift{
			ID:       uuid.New().String(),
			Date:     date,
			Start:    tmpl.Start,
			End:      tmpl.End,
			Category: tmpl.Category,
			Required: assigned < tmpl.MinWorkers,
			WorkerID: w.ID,
		})
		seen[w.ID] = true
		state.record(w.ID, date, shiftHours)
		assigned++
	}

	// Shortfalls surface as unassigned required slots, never as an error
	if assigned < tmpl.MinWorkers {
		out = append(out, e.unassignedSlots(date, tmpl, tmpl.MinWorkers-assigned)...)
	}

	return out, nil
}

// score sums every rule's adjustment for one candidate, floored at zero
func (e *Engine) score(w model.Worker, tmpl model.ShiftTemplate, date string, shiftHours float64, state *runState) float64 {
	in := ScoreInput{
		Worker:            w,
		Template:          tmpl,
		Date:              date,
		ShiftHours:        shiftHours,
		CurrentHours:      state.hours[w.ID],
		TargetHours:       e.TargetHours(w),
		WorkedAdjacentDay: e.workedAdjacentDay(w.ID, date, state),
	}

	total := 0.0
	for _, rule := range e.rules {
		total += rule.Score(in)
	}
	if total < 0 {
		return 0
	}
	return total
}

func (e *Engine) workedAdjacentDay(workerID, date string, state *runState) bool {
	day, err := clock.ParseDate(date)
	if err != nil {
		return false
	}
	before := clock.FormatDate(day.AddDate(0, 0, -1))
	after := clock.FormatDate(day.AddDate(0, 0, 1))
	return state.hasShiftOn(workerID, before) || state.hasShiftOn(workerID, after)
}

func (e *Engine) unassignedSlots(date string, tmpl model.ShiftTemplate, count int) []model.Shift {
	slots := make([]model.Shift, 0, count)
	for i := 0; i < count; i++ {
		slots = append(slots, model.Shift{
			ID:       uuid.New().String(),
			Date:     date,
			Start:    tmpl.Start,
			End:      tmpl.End,
			Category: tmpl.Category,
			Required: true,
		})
	}
	return slots
}
