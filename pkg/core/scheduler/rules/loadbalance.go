package rules

import (
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// LoadBalanceWeight scales the proportional-load bonus
const LoadBalanceWeight = 20.0

// LoadBalanceRule favours the workers furthest below their proportional
// weekly load: bonus = weight * (1 - current/target), clamped at zero once
// a worker reaches or passes target.
type LoadBalanceRule struct{}

// NewLoadBalanceRule creates the load-balance rule
func NewLoadBalanceRule() *LoadBalanceRule {
	return &LoadBalanceRule{}
}

func (r *LoadBalanceRule) Name() string {
	return "LoadBalance"
}

func (r *LoadBalanceRule) Score(in scheduler.ScoreInput) float64 {
	if in.TargetHours <= 0 {
		return 0
	}
	share := 1 - in.CurrentHours/in.TargetHours
	if share < 0 {
		return 0
	}
	return LoadBalanceWeight * share
}
