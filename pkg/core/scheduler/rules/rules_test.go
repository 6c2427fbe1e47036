package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

func input() scheduler.ScoreInput {
	return scheduler.ScoreInput{
		Worker:      model.Worker{ID: "w1", Name: "Alice", WorkPercent: 100, Active: true},
		Template:    model.ShiftTemplate{Category: model.CategoryRegular},
		Date:        "2026-01-05",
		ShiftHours:  4,
		TargetHours: 40,
	}
}

func TestHeadroomRule_Bands(t *testing.T) {
	rule := NewHeadroomRule()

	tests := []struct {
		name         string
		currentHours float64
		shiftHours   float64
		want         float64
	}{
		{"full headroom", 0, 4, FullHeadroomBonus},
		{"headroom exactly covers shift", 36, 4, FullHeadroomBonus},
		{"partial headroom", 38, 4, PartialHeadroomBonus},
		{"slightly over after shift", 40, 1, SlightOverBonus},
		{"two hours over exactly", 41, 1, SlightOverBonus},
		{"neutral band", 40, 4, 0},
		{"five hours over exactly", 44, 1, 0},
		{"deep overage", 44, 4, -OveragePenaltyPerHour * 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := input()
			in.CurrentHours = tc.currentHours
			in.ShiftHours = tc.shiftHours
			assert.InDelta(t, tc.want, rule.Score(in), 0.001)
		})
	}
}

func TestLoadBalanceRule(t *testing.T) {
	rule := NewLoadBalanceRule()

	in := input()
	assert.InDelta(t, LoadBalanceWeight, rule.Score(in), 0.001)

	in.CurrentHours = 20
	assert.InDelta(t, LoadBalanceWeight*0.5, rule.Score(in), 0.001)

	// At or past target the bonus clamps to zero, never negative
	in.CurrentHours = 40
	assert.Equal(t, 0.0, rule.Score(in))
	in.CurrentHours = 50
	assert.Equal(t, 0.0, rule.Score(in))

	// A zero-target worker gets no bonus rather than a division blowup
	in = input()
	in.TargetHours = 0
	assert.Equal(t, 0.0, rule.Score(in))
}

func TestRolePriorityRule(t *testing.T) {
	rule := NewRolePriorityRule()

	in := input()
	in.Template.Category = model.CategoryOpening
	assert.InDelta(t, 10.0, rule.Score(in), 0.001)

	in.Template.Category = model.CategoryClosing
	in.Worker.WorkPercent = 50
	assert.InDelta(t, 5.0, rule.Score(in), 0.001)

	in.Template.Category = model.CategoryRegular
	assert.Equal(t, 0.0, rule.Score(in))
}

func TestConsecutiveDayRule(t *testing.T) {
	rule := NewConsecutiveDayRule()

	in := input()
	assert.Equal(t, 0.0, rule.Score(in))

	in.WorkedAdjacentDay = true
	assert.Equal(t, -ConsecutiveDayPenalty, rule.Score(in))
}

func TestFreshWorkerRule(t *testing.T) {
	rule := NewFreshWorkerRule()

	in := input()
	assert.Equal(t, FreshWorkerBonus, rule.Score(in))

	in.CurrentHours = 0.5
	assert.Equal(t, 0.0, rule.Score(in))
}

func TestDefault_OrderIsStable(t *testing.T) {
	chain := Default()

	var names []string
	for _, rule := range chain {
		names = append(names, rule.Name())
	}

	assert.Equal(t, []string{
		"TargetHeadroom",
		"LoadBalance",
		"RolePriority",
		"ConsecutiveDay",
		"FreshWorker",
	}, names)
}
