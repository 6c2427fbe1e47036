package rules

import (
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// FreshWorkerBonus is added while a worker has no hours this week
const FreshWorkerBonus = 10.0

// FreshWorkerRule spreads the first assignments of a run across the roster
// by boosting workers who have nothing scheduled yet.
type FreshWorkerRule struct{}

// NewFreshWorkerRule creates the fresh-worker rule
func NewFreshWorkerRule() *FreshWorkerRule {
	return &FreshWorkerRule{}
}

func (r *FreshWorkerRule) Name() string {
	return "FreshWorker"
}

func (r *FreshWorkerRule) Score(in scheduler.ScoreInput) float64 {
	if in.CurrentHours == 0 {
		return FreshWorkerBonus
	}
	return 0
}
