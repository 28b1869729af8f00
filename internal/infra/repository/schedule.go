package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinicbook/internal/domain/schedule"
	"clinicbook/internal/infra"
	"clinicbook/internal/pkg/pgconv"
	"clinicbook/internal/usecase/commands"
)

type ScheduleReads struct {
	pool *pgxpool.Pool
}

func NewScheduleReads(pool *pgxpool.Pool) commands.ScheduleReads {
	return &ScheduleReads{pool: pool}
}

// WindowsFor returns the doctor's published weekly attention windows. A
// doctor with no windows at all is KindNotFound, distinct from an agenda
// that simply has no window at a requested instant.
func (r *ScheduleReads) WindowsFor(ctx context.Context, doctorID uuid.UUID) (schedule.WeeklyAgenda, error) {
	const query = `
		SELECT day_of_week, start_minute, end_minute, slot_minutes
		FROM doctor_schedules
		WHERE doctor_id = $1
		ORDER BY day_of_week, start_minute
	`

	rows, err := r.pool.Query(ctx, query, pgconv.UUIDToPgtype(doctorID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load doctor schedule", err)
	}
	defer rows.Close()

	var agenda schedule.WeeklyAgenda
	for rows.Next() {
		var w schedule.Window
		var dow int
		if err := rows.Scan(&dow, &w.StartMinute, &w.EndMinute, &w.SlotMinutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule window", err)
		}
		w.DayOfWeek = time.Weekday(dow)
		agenda = append(agenda, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read schedule windows", err)
	}
	if len(agenda) == 0 {
		return nil, infra.WrapRepoErr("doctor has no published schedule", pgx.ErrNoRows, infra.KindNotFound)
	}

	return agenda, nil
}
