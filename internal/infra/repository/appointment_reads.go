package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinicbook/internal/domain/appointment"
	"clinicbook/internal/infra"
	"clinicbook/internal/pkg/pgconv"
	"clinicbook/internal/usecase/commands"
)

type AppointmentReads struct {
	pool *pgxpool.Pool
}

func NewAppointmentReads(pool *pgxpool.Pool) commands.AppointmentReads {
	return &AppointmentReads{pool: pool}
}

func (r *AppointmentReads) FindByID(ctx context.Context, id uuid.UUID) (*commands.AppointmentSnapshot, error) {
	const query = `
		SELECT id, doctor_id, patient_id, speciality_id, scheduled_at, reason,
		       status, expires_at, price_cents, payment_reference, cancelled_by,
		       cancelled_at, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`

	var (
		s                commands.AppointmentSnapshot
		specialityID     pgtype.UUID
		reason           pgtype.Text
		status           string
		expiresAt        pgtype.Timestamptz
		paymentReference pgtype.Text
		cancelledBy      pgtype.UUID
		cancelledAt      pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&s.ID, &s.DoctorID, &s.PatientID, &specialityID, &s.ScheduledAt, &reason,
		&status, &expiresAt, &s.PriceCents, &paymentReference, &cancelledBy,
		&cancelledAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}

	s.SpecialityID = pgconv.UUIDPtrFromPgtype(specialityID)
	s.Reason = pgconv.StringPtrFromPgtype(reason)
	s.Status = appointment.Status(status)
	s.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	s.PaymentReference = pgconv.StringPtrFromPgtype(paymentReference)
	s.CancelledBy = pgconv.UUIDPtrFromPgtype(cancelledBy)
	s.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	return &s, nil
}

func (r *AppointmentReads) DoctorBusyAt(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doctor_id = $1 AND scheduled_at = $2
			  AND status IN ('pending', 'confirmed')
		)
	`
	return r.busyAt(ctx, query, doctorID, at)
}

func (r *AppointmentReads) PatientBusyAt(ctx context.Context, patientID uuid.UUID, at time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE patient_id = $1 AND scheduled_at = $2
			  AND status IN ('pending', 'confirmed')
		)
	`
	return r.busyAt(ctx, query, patientID, at)
}

func (r *AppointmentReads) busyAt(ctx context.Context, query string, id uuid.UUID, at time.Time) (bool, error) {
	var busy bool
	if err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id), at).Scan(&busy); err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return busy, nil
}
