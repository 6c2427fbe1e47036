// Package rules contains the additive scoring rules the assignment engine
// sums for each candidate worker. Each rule is pure and independently
// testable; the engine applies them in the order Default returns them.
package rules

import (
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// Headroom scoring bands. Workers comfortably under target get the large
// bonus; past-target workers slide through a small-bonus band, a neutral
// band, and finally a steep per-hour penalty.
const (
	FullHeadroomBonus     = 50.0
	PartialHeadroomBonus  = 25.0
	SlightOverBonus       = 5.0
	SlightOverBandHours   = 2.0
	NeutralOverBandHours  = 5.0
	OveragePenaltyPerHour = 10.0
)

// HeadroomRule scores target-hours headroom, the dominant term of the
// heuristic.
//
// Bands:
//   - remaining headroom covers the whole shift: +FullHeadroomBonus
//   - some headroom left but less than the shift: +PartialHeadroomBonus
//   - would land at most 2h over target: +SlightOverBonus
//   - would land at most 5h over target: neutral
//   - beyond 5h over: -OveragePenaltyPerHour per hour past the band
type HeadroomRule struct{}

// NewHeadroomRule creates the target-hours headroom rule
func NewHeadroomRule() *HeadroomRule {
	return &HeadroomRule{}
}

func (r *HeadroomRule) Name() string {
	return "TargetHeadroom"
}

func (r *HeadroomRule) Score(in scheduler.ScoreInput) float64 {
	remaining := in.TargetHours - in.CurrentHours
	if remaining < 0 {
		remaining = 0
	}

	if remaining >= in.ShiftHours {
		return FullHeadroomBonus
	}
	if remaining > 0 {
		return PartialHeadroomBonus
	}

	overAfter := in.CurrentHours + in.ShiftHours - in.TargetHours
	switch {
	case overAfter <= SlightOverBandHours:
		return SlightOverBonus
	case overAfter <= NeutralOverBandHours:
		return 0
	default:
		return -OveragePenaltyPerHour * (overAfter - NeutralOverBandHours)
	}
}
