package payment

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	// StatusIgnored marks an approved provider payment whose appointment was
	// no longer confirmable; kept for manual operator reconciliation.
	StatusIgnored  Status = "ignored"
	StatusRefunded Status = "refunded"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusIgnored, StatusRefunded:
		return true
	default:
		return false
	}
}

// Payment records one external payment event against one appointment.
// ExternalID is the provider's payment id and must be unique across rows: it
// is the idempotency key that keeps a re-delivered webhook from applying
// twice. Rows are created or updated by the reconciler and never deleted.
type Payment struct {
	ID              uuid.UUID
	AppointmentID   uuid.UUID
	ExternalID      string
	Status          Status
	AmountCents     int64
	PaidAt          *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func New(appointmentID uuid.UUID, externalID string, status Status, amountCents int64, paidAt *time.Time, now time.Time) *Payment {
	return &Payment{
		ID:            uuid.New(),
		AppointmentID: appointmentID,
		ExternalID:    externalID,
		Status:        status,
		AmountCents:   amountCents,
		PaidAt:        paidAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Reconciled reports whether this row has already been fully applied; a
// re-delivered webhook for it is a no-op.
func (p *Payment) Reconciled() bool {
	return p.PaidAt != nil
}
