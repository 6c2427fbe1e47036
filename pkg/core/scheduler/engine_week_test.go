package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
	"github.com/mhaglund/storeshift/pkg/core/scheduler/rules"
)

var testWeekStart = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) // a Monday

func storeWeek(t *testing.T) map[time.Weekday]scheduler.DayHours {
	t.Helper()
	return map[time.Weekday]scheduler.DayHours{
		time.Monday:    {Open: "09:00", Close: "18:00"},
		time.Tuesday:   {Open: "09:00", Close: "18:00"},
		time.Wednesday: {Open: "09:00", Close: "18:00"},
		time.Thursday:  {Open: "09:00", Close: "20:00"},
		time.Friday:    {Open: "09:00", Close: "20:00"},
		time.Saturday:  {Open: "10:00", Close: "20:00"},
		time.Sunday:    {Closed: true},
	}
}

func roster() []model.Worker {
	everyday := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	return []model.Worker{
		{ID: "w1", Name: "Alice", WorkPercent: 100, AvailableDays: everyday, Active: true},
		{ID: "w2", Name: "Bob", WorkPercent: 100, AvailableDays: everyday, Active: true},
		{ID: "w3", Name: "Cara", WorkPercent: 80, AvailableDays: everyday, Active: true},
		{ID: "w4", Name: "Dan", WorkPercent: 50, AvailableDays: []time.Weekday{time.Thursday, time.Friday, time.Saturday}, Active: true},
		{ID: "w5", Name: "Eve", WorkPercent: 50, AvailableDays: everyday, Active: true},
	}
}

func generate(t *testing.T, workers []model.Worker, closures map[string]bool) []model.Shift {
	t.Helper()

	templates, err := scheduler.WeekTemplates(storeWeek(t))
	require.NoError(t, err)

	engine := scheduler.NewEngine(rules.Default(), scheduler.DefaultTuning())
	shifts, err := engine.GenerateWeek(testWeekStart, templates, workers, closures)
	require.NoError(t, err)
	return shifts
}

// assignmentPattern strips generated IDs so two runs can be compared
type assignmentPattern struct {
	Date     string
	Start    string
	End      string
	Category model.ShiftCategory
	Required bool
	WorkerID string
}

func patterns(shifts []model.Shift) []assignmentPattern {
	out := make([]assignmentPattern, len(shifts))
	for i, s := range shifts {
		out[i] = assignmentPattern{
			Date:     s.Date,
			Start:    s.Start,
			End:      s.End,
			Category: s.Category,
			Required: s.Required,
			WorkerID: s.WorkerID,
		}
	}
	return out
}

func TestGenerateWeek_Deterministic(t *testing.T) {
	first := generate(t, roster(), nil)
	second := generate(t, roster(), nil)

	assert.Equal(t, patterns(first), patterns(second))
}

func TestGenerateWeek_ShiftsStayInsideWeek(t *testing.T) {
	shifts := generate(t, roster(), nil)
	require.NotEmpty(t, shifts)

	weekEnd := testWeekStart.AddDate(0, 0, 7)
	for _, s := range shifts {
		day, err := clock.ParseDate(s.Date)
		require.NoError(t, err)
		assert.False(t, day.Before(testWeekStart), "shift %s precedes the week", s.Date)
		assert.True(t, day.Before(weekEnd), "shift %s follows the week", s.Date)

		// The store is shut on Sunday, so nothing lands there
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}
}

func TestGenerateWeek_NoWorkerOverlapsSameDay(t *testing.T) {
	shifts := generate(t, roster(), nil)

	type slot struct{ start, end int }
	byWorkerDay := make(map[string][]slot)

	for _, s := range shifts {
		if !s.Assigned() {
			continue
		}
		start, err := clock.Minutes(s.Start)
		require.NoError(t, err)
		end, err := clock.Minutes(s.End)
		require.NoError(t, err)

		key := s.WorkerID + "|" + s.Date
		for _, other := range byWorkerDay[key] {
			assert.False(t, start < other.end && other.start < end,
				"%s double-booked on %s: %s-%s", s.WorkerID, s.Date, s.Start, s.End)
		}
		byWorkerDay[key] = append(byWorkerDay[key], slot{start, end})
	}
}

func TestGenerateWeek_RespectsAvailability(t *testing.T) {
	shifts := generate(t, roster(), nil)

	for _, s := range shifts {
		if s.WorkerID != "w4" {
			continue
		}
		day, err := clock.WeekdayOf(s.Date)
		require.NoError(t, err)
		assert.Contains(t, []time.Weekday{time.Thursday, time.Friday, time.Saturday}, day)
	}
}

func TestGenerateWeek_SingleWorkerNeverDoubleBooked(t *testing.T) {
	everyday := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	solo := []model.Worker{
		{ID: "only", Name: "Only", WorkPercent: 100, AvailableDays: everyday, Active: true},
	}

	shifts := generate(t, solo, nil)
	require.NotEmpty(t, shifts)

	// Opening and morning windows overlap, so one of them must stay
	// unassigned rather than double-book the sole worker
	type slot struct{ start, end int }
	byDay := make(map[string][]slot)
	sawUnassigned := false

	for _, s := range shifts {
		if !s.Assigned() {
			sawUnassigned = true
			assert.True(t, s.Required, "backfilled slots are always required")
			continue
		}
		start, _ := clock.Minutes(s.Start)
		end, _ := clock.Minutes(s.End)
		for _, other := range byDay[s.Date] {
			assert.False(t, start < other.end && other.start < end)
		}
		byDay[s.Date] = append(byDay[s.Date], slot{start, end})
	}
	assert.True(t, sawUnassigned, "a lone worker cannot cover every required slot")
}

func TestGenerateWeek_ClosureSuppressesWholeDay(t *testing.T) {
	closures := map[string]bool{"2026-01-09": true} // the Friday

	shifts := generate(t, roster(), closures)
	for _, s := range shifts {
		assert.NotEqual(t, "2026-01-09", s.Date)
	}
}

func TestGenerateWeek_RequiredSlotsAlwaysMaterialize(t *testing.T) {
	// No workers at all: every template still emits MinWorkers required slots
	shifts := generate(t, nil, nil)
	require.NotEmpty(t, shifts)

	for _, s := range shifts {
		assert.False(t, s.Assigned())
		assert.True(t, s.Required)
	}

	templates, err := scheduler.WeekTemplates(storeWeek(t))
	require.NoError(t, err)

	wantRequired := 0
	for _, dayTemplates := range templates {
		for _, tmpl := range dayTemplates {
			wantRequired += tmpl.MinWorkers
		}
	}
	assert.Len(t, shifts, wantRequired)
}
