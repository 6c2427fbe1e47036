package rules

import (
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// Default returns the stock rule chain in order of influence. The order is
// part of the engine's observable behaviour and must stay stable.
func Default() []scheduler.Rule {
	return []scheduler.Rule{
		NewHeadroomRule(),
		NewLoadBalanceRule(),
		NewRolePriorityRule(),
		NewConsecutiveDayRule(),
		NewFreshWorkerRule(),
	}
}
