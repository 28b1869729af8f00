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

type PaymentReadStore struct {
	pool *pgxpool.Pool
}

func NewPaymentReadStore(pool *pgxpool.Pool) queries.PaymentReadStore {
	return &PaymentReadStore{pool: pool}
}

// FindByAppointmentID returns the latest payment event for the appointment.
func (s *PaymentReadStore) FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*queries.PaymentView, error) {
	const query = `
		SELECT id, appointment_id, external_id, status, amount_cents,
		       paid_at, rejection_reason, created_at
		FROM payments
		WHERE appointment_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var (
		v               queries.PaymentView
		paidAt          pgtype.Timestamptz
		rejectionReason pgtype.Text
	)
	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(appointmentID)).Scan(
		&v.ID, &v.AppointmentID, &v.ExternalID, &v.Status, &v.AmountCents,
		&paidAt, &rejectionReason, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	v.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	v.RejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)
	return &v, nil
}
