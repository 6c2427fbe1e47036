package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
	"github.com/mhaglund/storeshift/pkg/db"
)

// FindByWeek retrieves the schedule anchored at the given Monday together
// with its shifts, or db.ErrNotFound
func (d *DB) FindByWeek(ctx context.Context, weekStart string) (*model.Schedule, error) {
	var s model.Schedule
	var start time.Time
	err := d.pool.QueryRow(ctx, `
		SELECT id, week_start, generated, created_at, updated_at
		FROM schedule
		WHERE week_start = $1::date
	`, weekStart).Scan(&s.ID, &start, &s.Generated, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	s.WeekStart = clock.FormatDate(start)

	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_date, start_time, end_time, category, required, worker_id
		FROM shift
		WHERE schedule_id = $1
		ORDER BY shift_date, start_time, id
	`, s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var shift model.Shift
		var date time.Time
		var workerID *string
		if err := rows.Scan(&shift.ID, &date, &shift.Start, &shift.End, &shift.Category, &shift.Required, &workerID); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shift.Date = clock.FormatDate(date)
		if workerID != nil {
			shift.WorkerID = *workerID
		}
		s.Shifts = append(s.Shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return &s, nil
}

// Save upserts a schedule keyed by its week start and replaces its shifts
// in one transaction
func (d *DB) Save(ctx context.Context, schedule *model.Schedule) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule (id, week_start, generated, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (week_start) DO UPDATE
		SET generated = EXCLUDED.generated, updated_at = NOW()
	`, schedule.ID, schedule.WeekStart, schedule.Generated)
	if err != nil {
		return fmt.Errorf("failed to upsert schedule: %w", err)
	}

	// The stored schedule ID may differ from the passed one when the week
	// already existed; resolve it before writing shifts
	var scheduleID string
	err = tx.QueryRow(ctx, `SELECT id FROM schedule WHERE week_start = $1::date`, schedule.WeekStart).Scan(&scheduleID)
	if err != nil {
		return fmt.Errorf("failed to resolve schedule id: %w", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM shift WHERE schedule_id = $1`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to clear shifts: %w", err)
	}

	for _, s := range schedule.Shifts {
		var workerID *string
		if s.WorkerID != "" {
			workerID = &s.WorkerID
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO shift (id, schedule_id, shift_date, start_time, end_time, category, required, worker_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, scheduleID, s.Date, s.Start, s.End, s.Category, s.Required, workerID)
		if err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schedule: %w", err)
	}
	return nil
}

// Delete removes a schedule and its shifts
func (d *DB) Delete(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM schedule WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
