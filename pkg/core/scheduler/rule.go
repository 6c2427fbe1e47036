package scheduler

import "github.com/mhaglund/storeshift/pkg/core/model"

// ScoreInput carries the facts a scoring rule may consider for one
// candidate worker against one template instance. All fields are derived
// by the engine before scoring so rules stay pure.
type ScoreInput struct {
	Worker   model.Worker
	Template model.ShiftTemplate
	Date     string

	// ShiftHours is the duration of the candidate shift
	ShiftHours float64

	// CurrentHours is the worker's running total for this generation run
	CurrentHours float64

	// TargetHours is the worker's weekly target (work percent of the
	// full-time baseline)
	TargetHours float64

	// WorkedAdjacentDay is true when the worker already holds a shift on
	// the calendar day immediately before or after Date
	WorkedAdjacentDay bool
}

// Rule is one additive scoring adjustment. The engine sums every rule's
// score in order and floors the total at zero; each rule stays
// independently testable.
type Rule interface {
	Name() string
	Score(in ScoreInput) float64
}

// runState is the accumulator threaded through one generation run. It is
// created per GenerateWeek call and never escapes it.
type runState struct {
	hours map[string]float64
	dates map[string]map[string]bool
}

func newRunState() *runState {
	return &runState{
		hours: make(map[string]float64),
		dates: make(map[string]map[string]bool),
	}
}

func (s *runState) record(workerID, date string, hours float64) {
	s.hours[workerID] += hours
	if s.dates[workerID] == nil {
		s.dates[workerID] = make(map[string]bool)
	}
	s.dates[workerID][date] = true
}

func (s *runState) hasShiftOn(workerID, date string) bool {
	return s.dates[workerID][date]
}
