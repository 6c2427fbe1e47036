package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mhaglund/storeshift/internal/config"
	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
)

// ConsolidateScheduleStore defines the database operations needed for the
// consolidated weekly view
type ConsolidateScheduleStore interface {
	ListActiveWorkers(ctx context.Context) ([]model.Worker, error)
	FindByWeek(ctx context.Context, weekStart string) (*model.Schedule, error)
}

// ConsolidateSchedule turns a stored week into the worker-centric day view:
// merged work blocks with break gaps, plus per-day coverage warnings
func ConsolidateSchedule(
	ctx context.Context,
	database ConsolidateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
) ([]model.DaySummary, error) {
	logger.Debug("Starting consolidateSchedule", zap.String("week_start", weekStart))

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

	summaries, err := scheduler.Consolidate(*schedule, workers, cfg.CoverageConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to consolidate schedule: %w", err)
	}

	logger.Debug("Consolidation complete", zap.Int("days", len(summaries)))
	return summaries, nil
}
