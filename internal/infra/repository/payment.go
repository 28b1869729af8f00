package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"clinicbook/internal/domain/payment"
	"clinicbook/internal/infra"
	"clinicbook/internal/infra/db"
	"clinicbook/internal/pkg/pgconv"
	"clinicbook/internal/usecase/commands"
)

type PaymentRepository struct{}

func NewPaymentRepository() commands.PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) FindByExternalID(ctx context.Context, tx db.DBTX, externalID string) (*payment.Payment, error) {
	const query = `
		SELECT id, appointment_id, external_id, status, amount_cents,
		       paid_at, rejection_reason, created_at, updated_at
		FROM payments
		WHERE external_id = $1
	`

	var (
		p               payment.Payment
		status          string
		paidAt          pgtype.Timestamptz
		rejectionReason pgtype.Text
	)
	err := tx.QueryRow(ctx, query, externalID).Scan(
		&p.ID, &p.AppointmentID, &p.ExternalID, &status, &p.AmountCents,
		&paidAt, &rejectionReason, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	p.Status = payment.Status(status)
	p.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	p.RejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)
	return &p, nil
}

// Create relies on the unique index on external_id as the idempotency gate:
// two reconcilers racing on the same provider payment id collapse into one
// row, and the loser sees KindDuplicateKey.
func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	const query = `
		INSERT INTO payments (
			id, appointment_id, external_id, status, amount_cents,
			paid_at, rejection_reason, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID),
		pgconv.UUIDToPgtype(p.AppointmentID),
		p.ExternalID,
		string(p.Status),
		p.AmountCents,
		pgconv.TimePtrToPgtype(p.PaidAt),
		pgconv.StringPtrToPgtype(p.RejectionReason),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return infra.WrapRepoErr("payment already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	const query = `
		UPDATE payments
		SET status = $2, paid_at = $3, rejection_reason = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID),
		string(p.Status),
		pgconv.TimePtrToPgtype(p.PaidAt),
		pgconv.StringPtrToPgtype(p.RejectionReason),
		p.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
