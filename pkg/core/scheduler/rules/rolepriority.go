package rules

import (
	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// RolePriorityWeight converts work percent into the opening/closing bonus
const RolePriorityWeight = 0.1

// RolePriorityRule nudges opening and closing slots towards workers with a
// higher work percentage. Those slots need the most reliable staff; regular
// slots score zero here.
type RolePriorityRule struct{}

// NewRolePriorityRule creates the opening/closing reliability rule
func NewRolePriorityRule() *RolePriorityRule {
	return &RolePriorityRule{}
}

func (r *RolePriorityRule) Name() string {
	return "RolePriority"
}

func (r *RolePriorityRule) Score(in scheduler.ScoreInput) float64 {
	switch in.Template.Category {
	case model.CategoryOpening, model.CategoryClosing:
		return RolePriorityWeight * float64(in.Worker.WorkPercent)
	default:
		return 0
	}
}
