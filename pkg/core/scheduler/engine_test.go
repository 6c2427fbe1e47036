package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhaglund/storeshift/pkg/core/model"
)

// stubRule scores workers by a fixed map, default zero
type stubRule struct {
	scores map[string]float64
}

func (r stubRule) Name() string { return "Stub" }

func (r stubRule) Score(in ScoreInput) float64 {
	return r.scores[in.Worker.ID]
}

func allWeekWorker(id string, percent int) model.Worker {
	return model.Worker{
		ID:          id,
		Name:        id,
		WorkPercent: percent,
		AvailableDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
			time.Friday, time.Saturday, time.Sunday,
		},
		Active: true,
	}
}

func testTemplate(minW, maxW int, prio model.Priority) model.ShiftTemplate {
	return model.ShiftTemplate{
		Weekday:    time.Monday,
		Start:      "09:00",
		End:        "13:00",
		Category:   model.CategoryRegular,
		MinWorkers: minW,
		MaxWorkers: maxW,
		Priority:   prio,
	}
}

func TestFillTemplate_NoCandidates(t *testing.T) {
	engine := NewEngine(nil, DefaultTuning())
	state := newRunState()

	shifts, err := engine.fillTemplate("2026-01-05", testTemplate(2, 3, model.PriorityMedium), nil, state, nil)
	require.NoError(t, err)

	// Minimum coverage always materializes, unassigned and required
	require.Len(t, shifts, 2)
	for _, s := range shifts {
		assert.False(t, s.Assigned())
		assert.True(t, s.Required)
		assert.Equal(t, "2026-01-05", s.Date)
		assert.NotEmpty(t, s.ID)
	}
}

func TestFillTemplate_BackfillsShortfall(t *testing.T) {
	engine := NewEngine(nil, DefaultTuning())
	state := newRunState()
	workers := []model.Worker{allWeekWorker("w1", 100)}

	shifts, err := engine.fillTemplate("2026-01-05", testTemplate(2, 3, model.PriorityMedium), workers, state, nil)
	require.NoError(t, err)

	// One assigned, one unassigned backfill: never fewer than MinWorkers slots
	require.Len(t, shifts, 2)
	assert.Equal(t, "w1", shifts[0].WorkerID)
	assert.True(t, shifts[0].Required)
	assert.False(t, shifts[1].Assigned())
	assert.True(t, shifts[1].Required)
}

func TestFillTemplate_RequiredByPosition(t *testing.T) {
	engine := NewEngine(nil, DefaultTuning())
	state := newRunState()
	workers := []model.Worker{
		allWeekWorker("w1", 100),
		allWeekWorker("w2", 100),
		allWeekWorker("w3", 100),
	}

	shifts, err := engine.fillTemplate("2026-01-05", testTemplate(2, 3, model.PriorityMedium), workers, state, nil)
	require.NoError(t, err)

	require.Len(t, shifts, 3)
	assert.True(t, shifts[0].Required)
	assert.True(t, shifts[1].Required)
	assert.False(t, shifts[2].Required, "slots past MinWorkers are optional")
}

func TestFillTemplate_StableTieBreak(t *testing.T) {
	// All scores equal: assignment follows candidate input order
	engine := NewEngine([]Rule{stubRule{}}, DefaultTuning())
	state := newRunState()
	workers := []model.Worker{
		allWeekWorker("zoe", 100),
		allWeekWorker("adam", 100),
	}

	shifts, err := engine.fillTemplate("2026-01-05", testTemplate(1, 2, model.PriorityMedium), workers, state, nil)
	require.NoError(t, err)

	require.Len(t, shifts, 2)
	assert.Equal(t, "zoe", shifts[0].WorkerID)
	assert.Equal(t, "adam", shifts[1].WorkerID)
}

func TestFillTemplate_ScoreOrdersAssignment(t *testing.T) {
	engine := NewEngine([]Rule{stubRule{scores: map[string]float64{"w1": 1, "w2": 5}}}, DefaultTuning())
	state := newRunState()
	workers := []model.Worker{allWeekWorker("w1", 100), allWeekWorker("w2", 100)}

	shifts, err := engine.fillTemplate("2026-01-05", testTemplate(1, 1, model.PriorityMedium), workers, state, nil)
	require.NoError(t, err)

	require.Len(t, shifts, 1)
	assert.Equal(t, "w2", shifts[0].WorkerID)
}

func TestFillTemplate_HighPriorityFillsAllSlots(t *testing.T) {
	engine := NewEngine(nil, DefaultTuning())
	state := newRunState()
	workers := []model.Worker{
		allWeekWorker("w1", 100),
		allWeekWorker("w2", 100),
		allWeekWorker("w3", 100),
	}

	// min 1 / max 3 with three candidates: every slot gets filled
	shifts, err := engine.fillTemplate("2026-01-05", testTemplate(1, 3, model.PriorityHigh), workers, state, nil)
	require.NoError(t, err)

	assigned := 0
	for _, s := range shifts {
		if s.Assigned() {
			assigned++
		}
	}
	assert.Equal(t, 3, assigned)
}

func TestFillTemplate_OvertimeCeilingSkipsOptionalSlots(t *testing.T) {
	engine := NewEngine([]Rule{stubRule{scores: map[string]float64{"fresh": 100}}}, DefaultTuning())
	state := newRunState()

	// "loaded" is already 14h over a 4h target; one more 4h shift breaches
	// the 12h ceiling
	state.record("loaded", "2026-01-06", 18)

	workers := []model.Worker{
		allWeekWorker("fresh", 100),
		allWeekWorker("loaded", 10),
	}

	shifts, err := engine.fillTemplate("2026-01-05", testTemplate(1, 2, model.PriorityMedium), workers, state, nil)
	require.NoError(t, err)

	// fresh covers the minimum; loaded is skipped for the optional slot
	require.Len(t, shifts, 1)
	assert.Equal(t, "fresh", shifts[0].WorkerID)
}

func TestFillTemplate_CeilingNeverBlocksMinimumCoverage(t *testing.T) {
	engine := NewEngine(nil, DefaultTuning())
	state := newRunState()

	// The only candidate is far past the ceiling, but minimum coverage
	// still wins: the engine assigns rather than emit an unassigned slot
	state.record("only", "2026-01-06", 30)
	workers := []model.Worker{allWeekWorker("only", 10)}

	shifts, err := engine.fillTemplate("2026-01-05", testTemplate(1, 1, model.PriorityMedium), workers, state, nil)
	require.NoError(t, err)

	require.Len(t, shifts, 1)
	assert.Equal(t, "only", shifts[0].WorkerID)
}

func TestGenerateWeek_RejectsNonMonday(t *testing.T) {
	engine := NewEngine(nil, DefaultTuning())

	// 2026-01-06 is a Tuesday
	_, err := engine.GenerateWeek(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), nil, nil, nil)
	assert.Error(t, err)
}

func TestGenerateWeek_SkipsClosedDates(t *testing.T) {
	engine := NewEngine(nil, DefaultTuning())
	templates := map[time.Weekday][]model.ShiftTemplate{
		time.Monday:  {testTemplate(1, 1, model.PriorityMedium)},
		time.Tuesday: {testTemplate(1, 1, model.PriorityMedium)},
	}
	workers := []model.Worker{allWeekWorker("w1", 100)}
	closures := map[string]bool{"2026-01-05": true}

	shifts, err := engine.GenerateWeek(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), templates, workers, closures)
	require.NoError(t, err)

	require.Len(t, shifts, 1)
	assert.Equal(t, "2026-01-06", shifts[0].Date)
}
