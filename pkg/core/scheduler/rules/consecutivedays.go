package rules

import (
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// ConsecutiveDayPenalty is subtracted when the worker already holds a shift
// on the day before or after the candidate date
const ConsecutiveDayPenalty = 15.0

// ConsecutiveDayRule softly discourages back-to-back working days. It is a
// penalty, never a hard exclusion; a thin roster can still produce
// consecutive days.
type ConsecutiveDayRule struct{}

// NewConsecutiveDayRule creates the consecutive-day rule
func NewConsecutiveDayRule() *ConsecutiveDayRule {
	return &ConsecutiveDayRule{}
}

func (r *ConsecutiveDayRule) Name() string {
	return "ConsecutiveDay"
}

func (r *ConsecutiveDayRule) Score(in scheduler.ScoreInput) float64 {
	if in.WorkedAdjacentDay {
		return -ConsecutiveDayPenalty
	}
	return 0
}
