package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mhaglund/storeshift/pkg/core/model"
)

// DeleteScheduleStore defines the database operations needed to delete a
// week's schedule
type DeleteScheduleStore interface {
	FindByWeek(ctx context.Context, weekStart string) (*model.Schedule, error)
	Delete(ctx context.Context, id string) error
}

// DeleteSchedule removes the schedule stored for the given week
func DeleteSchedule(
	ctx context.Context,
	database DeleteScheduleStore,
	logger *zap.Logger,
	weekStart string,
) error {
	logger.Debug("Starting deleteSchedule", zap.String("week_start", weekStart))

	if _, err := parseWeekStart(weekStart); err != nil {
		return err
	}

	schedule, err := database.FindByWeek(ctx, weekStart)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}

	if err := database.Delete(ctx, schedule.ID); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	logger.Info("Schedule deleted",
		zap.String("schedule_id", schedule.ID),
		zap.String("week_start", weekStart))
	return nil
}
