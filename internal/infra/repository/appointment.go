package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"clinicbook/internal/domain/appointment"
	"clinicbook/internal/infra"
	"clinicbook/internal/infra/db"
	"clinicbook/internal/pkg/pgconv"
	"clinicbook/internal/usecase/commands"
)

const pgUniqueViolation = "23505"
const pgForeignKeyViolation = "23503"

type AppointmentRepository struct{}

func NewAppointmentRepository() commands.AppointmentRepository {
	return &AppointmentRepository{}
}

// Create inserts the hold. The partial unique indexes on
// (doctor_id, scheduled_at) and (patient_id, scheduled_at) for active rows
// are the authoritative double-booking guard; a violation maps to
// KindConflict so the caller can answer 409 to whichever writer lost.
func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	const query = `
		INSERT INTO appointments (
			id, doctor_id, patient_id, speciality_id, scheduled_at, reason,
			status, expires_at, price_cents, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(a.ID()),
		pgconv.UUIDToPgtype(a.DoctorID()),
		pgconv.UUIDToPgtype(a.PatientID()),
		pgconv.UUIDPtrToPgtype(a.SpecialityID()),
		a.ScheduledAt(),
		pgconv.StringPtrToPgtype(a.Reason()),
		string(a.Status()),
		pgconv.TimePtrToPgtype(a.ExpiresAt()),
		a.PriceAtBooking().Cents(),
		a.CreatedAt(),
		a.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr("slot already taken", err, infra.KindConflict)
			case pgForeignKeyViolation:
				return uuid.Nil, infra.WrapRepoErr("referenced row does not exist", err, infra.KindForeignKeyViolated)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	return id, nil
}

func (r *AppointmentRepository) ConfirmPending(ctx context.Context, tx db.DBTX, id uuid.UUID, paymentReference string, now time.Time) (int64, error) {
	const query = `
		UPDATE appointments
		SET status = 'confirmed', payment_reference = $2, expires_at = NULL, updated_at = $3
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := tx.Exec(ctx, query, pgconv.UUIDToPgtype(id), paymentReference, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm appointment", err)
	}
	return tag.RowsAffected(), nil
}

func (r *AppointmentRepository) TransitionStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to appointment.Status, cancelledBy *uuid.UUID, now time.Time) (int64, error) {
	const query = `
		UPDATE appointments
		SET status = $3,
		    expires_at = CASE WHEN $3 = 'pending' THEN expires_at ELSE NULL END,
		    cancelled_by = CASE WHEN $3 = 'cancelled' THEN $4 ELSE cancelled_by END,
		    cancelled_at = CASE WHEN $3 = 'cancelled' THEN $5 ELSE cancelled_at END,
		    updated_at = $5
		WHERE id = $1 AND status = $2
	`

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(id),
		string(from),
		string(to),
		pgconv.UUIDPtrToPgtype(cancelledBy),
		now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to transition appointment status", err)
	}
	return tag.RowsAffected(), nil
}

// CancelExpired lapses every overdue hold in one statement so a sweep is a
// single round trip regardless of how many holds expired.
func (r *AppointmentRepository) CancelExpired(ctx context.Context, tx db.DBTX, now time.Time) ([]uuid.UUID, error) {
	const query = `
		UPDATE appointments
		SET status = 'cancelled', expires_at = NULL, cancelled_at = $1, updated_at = $1
		WHERE status = 'pending' AND expires_at < $1
		RETURNING id
	`

	rows, err := tx.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel expired appointments", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired appointment id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired appointment ids", err)
	}

	return ids, nil
}
