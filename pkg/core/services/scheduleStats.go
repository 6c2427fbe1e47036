package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// ScheduleStatsStore defines the database operations needed for stats
type ScheduleStatsStore interface {
	FindByWeek(ctx context.Context, weekStart string) (*model.Schedule, error)
}

// ScheduleStats aggregates a stored week's schedule into totals
func ScheduleStats(
	ctx context.Context,
	database ScheduleStatsStore,
	logger *zap.Logger,
	weekStart string,
) (model.ScheduleStats, error) {
	logger.Debug("Starting scheduleStats", zap.String("week_start", weekStart))

	if _, err := parseWeekStart(weekStart); err != nil {
		return model.ScheduleStats{}, err
	}

	schedule, err := database.FindByWeek(ctx, weekStart)
	if err != nil {
		return model.ScheduleStats{}, fmt.Errorf("failed to load schedule: %w", err)
	}

	stats, err := scheduler.Stats(*schedule)
	if err != nil {
		return model.ScheduleStats{}, fmt.Errorf("failed to aggregate schedule: %w", err)
	}

	return stats, nil
}
