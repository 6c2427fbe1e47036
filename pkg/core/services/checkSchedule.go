package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mhaglund/storeshift/internal/config"
	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/db"
)

// CheckResult reports whether a week can be generated and any staffing
// issues found. Issues are advisory except the empty-roster case, which is
// the only one that flips CanGenerate off.
type CheckResult struct {
	CanGenerate bool
	Issues      []string
}

// CheckScheduleStore defines the database operations needed to check a week
type CheckScheduleStore interface {
	ListActiveWorkers(ctx context.Context) ([]model.Worker, error)
	ListAvailableWorkers(ctx context.Context, date string) ([]model.Worker, error)
	FindByWeek(ctx context.Context, weekStart string) (*model.Schedule, error)
}

// CheckSchedule inspects the roster against the requested week and reports
// infeasibility conditions as structured issues instead of errors
func CheckSchedule(
	ctx context.Context,
	database CheckScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
) (*CheckResult, error) {
	logger.Debug("Starting checkSchedule", zap.String("week_start", weekStart))

	start, err := parseWeekStart(weekStart)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{CanGenerate: true, Issues: []string{}}

	workers, err := database.ListActiveWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	if len(workers) == 0 {
		result.CanGenerate = false
		result.Issues = append(result.Issues, "no active workers")
		return result, nil
	}

	for _, w := range workers {
		if len(w.AvailableDays) == 0 {
			result.Issues = append(result.Issues, fmt.Sprintf("worker %s has no available days", w.Name))
		}
		if w.WorkPercent <= 0 {
			result.Issues = append(result.Issues, fmt.Sprintf("worker %s has a zero work percentage", w.Name))
		}
	}

	week, err := cfg.WeekHours()
	if err != nil {
		return nil, fmt.Errorf("invalid store hours: %w", err)
	}
	closures, err := cfg.ClosureDatesForWeek(start)
	if err != nil {
		return nil, fmt.Errorf("failed to expand closures: %w", err)
	}

	// Per-day availability across the open days of the week
	for _, date := range weekDates(start) {
		if closures[date] {
			continue
		}
		day, err := clock.WeekdayOf(date)
		if err != nil {
			return nil, err
		}
		if week[day].Closed {
			continue
		}

		available, err := database.ListAvailableWorkers(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("failed to list available workers: %w", err)
		}
		if len(available) == 0 {
			result.Issues = append(result.Issues, fmt.Sprintf("no workers available on %s", date))
		}
	}

	existing, err := database.FindByWeek(ctx, weekStart)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up existing schedule: %w", err)
	}
	if existing != nil {
		result.Issues = append(result.Issues, fmt.Sprintf("a schedule for week %s already exists and will be replaced", weekStart))
	}

	logger.Debug("Check complete",
		zap.Bool("can_generate", result.CanGenerate),
		zap.Int("issues", len(result.Issues)))

	return result, nil
}
