package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinicbook/internal/infra"
	"clinicbook/internal/pkg/pgconv"
	"clinicbook/internal/usecase/queries"
)

type AppointmentReadStore struct {
	pool *pgxpool.Pool
}

func NewAppointmentReadStore(pool *pgxpool.Pool) queries.AppointmentReadStore {
	return &AppointmentReadStore{pool: pool}
}

func (s *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	const query = `
		SELECT a.id, a.doctor_id, d.name, a.patient_id,
		       a.speciality_id, sp.name,
		       a.scheduled_at, a.reason, a.status, a.expires_at, a.price_cents,
		       a.payment_reference, a.cancelled_by, a.cancelled_at,
		       a.created_at, a.updated_at
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		LEFT JOIN specialities sp ON sp.id = a.speciality_id
		WHERE a.id = $1
	`

	var (
		v                queries.AppointmentView
		specialityID     pgtype.UUID
		specialityName   pgtype.Text
		reason           pgtype.Text
		expiresAt        pgtype.Timestamptz
		paymentReference pgtype.Text
		cancelledBy      pgtype.UUID
		cancelledAt      pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&v.ID, &v.DoctorID, &v.DoctorName, &v.PatientID,
		&specialityID, &specialityName,
		&v.ScheduledAt, &reason, &v.Status, &expiresAt, &v.PriceCents,
		&paymentReference, &cancelledBy, &cancelledAt,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}

	v.SpecialityID = pgconv.UUIDPtrFromPgtype(specialityID)
	v.SpecialityName = pgconv.StringPtrFromPgtype(specialityName)
	v.Reason = pgconv.StringPtrFromPgtype(reason)
	v.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	v.PaymentReference = pgconv.StringPtrFromPgtype(paymentReference)
	v.CancelledBy = pgconv.UUIDPtrFromPgtype(cancelledBy)
	v.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	return &v, nil
}

func (s *AppointmentReadStore) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*queries.AppointmentListItem, error) {
	const query = `
		SELECT a.id, a.doctor_id, d.name, a.scheduled_at, a.status, a.price_cents, a.created_at
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.patient_id = $1
		ORDER BY a.scheduled_at DESC
	`

	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(patientID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	items := make([]*queries.AppointmentListItem, 0)
	for rows.Next() {
		var item queries.AppointmentListItem
		if err := rows.Scan(&item.ID, &item.DoctorID, &item.DoctorName, &item.ScheduledAt, &item.Status, &item.PriceCents, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment rows", err)
	}

	return items, nil
}
