// Package db defines the storage capabilities the services consume. The
// core never talks to storage directly; it receives these narrow
// interfaces and the pkg/postgres implementation satisfies them.
package db

import (
	"context"
	"errors"

	"github.com/mhaglund/storeshift/pkg/core/model"
)

// ErrNotFound is returned when a lookup matches nothing
var ErrNotFound = errors.New("not found")

// WorkerStore defines the worker repository capability
type WorkerStore interface {
	// ListActiveWorkers returns every active worker ordered by name then
	// ID. The order is the engine's deterministic tie-break, so it must be
	// stable across calls.
	ListActiveWorkers(ctx context.Context) ([]model.Worker, error)

	// ListAvailableWorkers returns the active workers available on the
	// given date (weekday pattern matches, not on holiday)
	ListAvailableWorkers(ctx context.Context, date string) ([]model.Worker, error)
}

// ScheduleStore defines the schedule repository capability
type ScheduleStore interface {
	// FindByWeek returns the schedule anchored at the given Monday, or
	// ErrNotFound
	FindByWeek(ctx context.Context, weekStart string) (*model.Schedule, error)

	// Save upserts a schedule and its shifts, keyed by week start
	Save(ctx context.Context, schedule *model.Schedule) error

	// Delete removes a schedule and its shifts; ErrNotFound if absent
	Delete(ctx context.Context, id string) error
}

// Database combines every storage capability the application uses
type Database interface {
	WorkerStore
	ScheduleStore
}
