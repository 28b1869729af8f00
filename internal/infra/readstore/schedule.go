package readstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinicbook/internal/infra"
	"clinicbook/internal/pkg/pgconv"
	"clinicbook/internal/usecase/queries"
)

type ScheduleViewStore struct {
	pool *pgxpool.Pool
}

func NewScheduleViewStore(pool *pgxpool.Pool) queries.ScheduleViewStore {
	return &ScheduleViewStore{pool: pool}
}

func (s *ScheduleViewStore) WindowViewsFor(ctx context.Context, doctorID uuid.UUID) ([]*queries.AvailabilityWindowView, error) {
	const query = `
		SELECT ds.day_of_week, ds.start_minute, ds.end_minute, ds.slot_minutes
		FROM doctor_schedules ds
		JOIN doctors d ON d.id = ds.doctor_id
		WHERE ds.doctor_id = $1 AND d.active
		ORDER BY ds.day_of_week, ds.start_minute
	`

	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(doctorID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load availability", err)
	}
	defer rows.Close()

	views := make([]*queries.AvailabilityWindowView, 0)
	for rows.Next() {
		var (
			v          queries.AvailabilityWindowView
			start, end int
		)
		if err := rows.Scan(&v.DayOfWeek, &start, &end, &v.SlotMinutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability window", err)
		}
		v.Start = minuteOfDay(start)
		v.End = minuteOfDay(end)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability windows", err)
	}

	if len(views) == 0 {
		return nil, infra.WrapRepoErr("doctor has no published schedule", nil, infra.KindNotFound)
	}

	return views, nil
}

func minuteOfDay(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
