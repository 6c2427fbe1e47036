package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mhaglund/storeshift/internal/config"
	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// WeeklyHoursStore defines the database operations needed for the weekly
// hours report
type WeeklyHoursStore interface {
	ListActiveWorkers(ctx context.Context) ([]model.Worker, error)
	FindByWeek(ctx context.Context, weekStart string) (*model.Schedule, error)
}

// WeeklyHours reports each worker's scheduled hours against their target
// for the given week
func WeeklyHours(
	ctx context.Context,
	database WeeklyHoursStore,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
) (map[string]model.WeeklyHoursEntry, error) {
	logger.Debug("Starting weeklyHours", zap.String("week_start", weekStart))

	if _, err := parseWeekStart(weekStart); err != nil {
		return nil, err
	}

	schedule, err := database.FindByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	workers, err := database.ListActiveWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	entries, err := scheduler.WeeklyHours(*schedule, workers, cfg.FullTimeHours, cfg.HoursTolerance)
	if err != nil {
		return nil, fmt.Errorf("failed to compute weekly hours: %w", err)
	}

	logger.Debug("Weekly hours computed", zap.Int("workers", len(entries)))
	return entries, nil
}
