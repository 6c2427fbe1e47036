package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mhaglund/storeshift/internal/config"
	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/core/scheduler"
	"github.com/mhaglund/storeshift/pkg/core/scheduler/rules"
	"github.com/mhaglund/storeshift/pkg/db"
)

// ErrNoActiveWorkers blocks generation: a week with nobody to schedule is
// the one infeasibility that is an error rather than a degraded schedule
var ErrNoActiveWorkers = errors.New("no active workers")

// GenerateOptions configures one schedule generation run
type GenerateOptions struct {
	// WeekStart is the Monday anchoring the week (required)
	WeekStart string

	// PrioritizeBalance and WeatherSensitive are advisory; the stock rule
	// chain already balances load and weather is an external collaborator
	PrioritizeBalance bool
	WeatherSensitive  bool

	// DryRun computes the schedule without persisting it
	DryRun bool
}

// GenerateScheduleStore defines the database operations needed to generate
// a schedule
type GenerateScheduleStore interface {
	ListActiveWorkers(ctx context.Context) ([]model.Worker, error)
	FindByWeek(ctx context.Context, weekStart string) (*model.Schedule, error)
	Save(ctx context.Context, schedule *model.Schedule) error
}

// GenerateSchedule builds the full week schedule: derive templates from the
// store-hours table, run the assignment engine over the active roster, and
// persist the result. Understaffing degrades to unassigned required slots;
// only an empty roster aborts.
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	opts GenerateOptions,
) (*model.Schedule, error) {
	logger.Debug("Starting generateSchedule",
		zap.String("week_start", opts.WeekStart),
		zap.Bool("dry_run", opts.DryRun),
		zap.Bool("prioritize_balance", opts.PrioritizeBalance),
		zap.Bool("weather_sensitive", opts.WeatherSensitive))

	start, err := parseWeekStart(opts.WeekStart)
	if err != nil {
		return nil, err
	}

	workers, err := database.ListActiveWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	if len(workers) == 0 {
		return nil, ErrNoActiveWorkers
	}
	logger.Debug("Loaded roster", zap.Strings("worker_ids", workerIDs(workers)))

	week, err := cfg.WeekHours()
	if err != nil {
		return nil, fmt.Errorf("invalid store hours: %w", err)
	}
	templates, err := scheduler.WeekTemplates(week)
	if err != nil {
		return nil, fmt.Errorf("failed to derive templates: %w", err)
	}

	closures, err := cfg.ClosureDatesForWeek(start)
	if err != nil {
		return nil, fmt.Errorf("failed to expand closures: %w", err)
	}
	if len(closures) > 0 {
		logger.Info("Store closures this week", zap.Int("days", len(closures)))
	}

	engine := scheduler.NewEngine(rules.Default(), cfg.Tuning())
	shifts, err := engine.GenerateWeek(start, templates, workers, closures)
	if err != nil {
		return nil, fmt.Errorf("assignment failed: %w", err)
	}

	schedule := &model.Schedule{
		ID:        uuid.New().String(),
		WeekStart: opts.WeekStart,
		Shifts:    shifts,
		Generated: true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	// Keep the stored identity when regenerating an existing week
	existing, err := database.FindByWeek(ctx, opts.WeekStart)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up existing schedule: %w", err)
	}
	if existing != nil {
		schedule.ID = existing.ID
		schedule.CreatedAt = existing.CreatedAt
		logger.Info("Replacing existing schedule", zap.String("schedule_id", existing.ID))
	}

	if opts.DryRun {
		logger.Info("Dry run, schedule not saved",
			zap.String("week_start", opts.WeekStart),
			zap.Int("shifts", len(schedule.Shifts)))
		return schedule, nil
	}

	if err := database.Save(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	logger.Info("Schedule generated",
		zap.String("schedule_id", schedule.ID),
		zap.String("week_start", schedule.WeekStart),
		zap.Int("shifts", len(schedule.Shifts)))

	return schedule, nil
}
