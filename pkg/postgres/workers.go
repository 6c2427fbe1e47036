package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
)

// ListActiveWorkers retrieves every active worker. The ordering (name, then
// id) is stable and feeds the engine's deterministic tie-break.
func (d *DB) ListActiveWorkers(ctx context.Context) ([]model.Worker, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, email, phone, work_percent, available_days, holidays, active
		FROM worker
		WHERE active
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	return scanWorkers(rows)
}

// ListAvailableWorkers retrieves the active workers available on the given
// date: the date's weekday is in their pattern and the date is not one of
// their holidays
func (d *DB) ListAvailableWorkers(ctx context.Context, date string) ([]model.Worker, error) {
	weekday, err := clock.WeekdayOf(date)
	if err != nil {
		return nil, err
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, name, email, phone, work_percent, available_days, holidays, active
		FROM worker
		WHERE active
		  AND $1 = ANY(available_days)
		  AND NOT ($2::date = ANY(holidays))
		ORDER BY name, id
	`, clock.WeekdayName(weekday), date)
	if err != nil {
		return nil, fmt.Errorf("failed to query available workers: %w", err)
	}
	defer rows.Close()

	return scanWorkers(rows)
}

func scanWorkers(rows pgx.Rows) ([]model.Worker, error) {
	var workers []model.Worker
	for rows.Next() {
		var w model.Worker
		var days []string
		var holidays []time.Time
		if err := rows.Scan(&w.ID, &w.Name, &w.Email, &w.Phone, &w.WorkPercent, &days, &holidays, &w.Active); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}

		for _, name := range days {
			day, err := clock.ParseWeekday(name)
			if err != nil {
				return nil, fmt.Errorf("worker %s: %w", w.ID, err)
			}
			w.AvailableDays = append(w.AvailableDays, day)
		}
		for _, h := range holidays {
			w.Holidays = append(w.Holidays, clock.FormatDate(h))
		}

		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workers: %w", err)
	}

	return workers, nil
}
