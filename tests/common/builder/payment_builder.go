//go:build unit || e2e

package builder

import (
	"time"

	dompayment "clinicbook/internal/domain/payment"
	"clinicbook/internal/infra/paymentgw"
	"clinicbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	ID              uuid.UUID
	AppointmentID   uuid.UUID
	ExternalID      string
	Status          dompayment.Status
	AmountCents     int64
	PaidAt          *time.Time
	RejectionReason *string
	CreatedAt       time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	now := time.Now()
	paidAt := now.Add(-time.Minute)
	return &PaymentBuilder{
		ID:            uuid.New(),
		AppointmentID: uuid.New(),
		ExternalID:    "100200300",
		Status:        dompayment.StatusApproved,
		AmountCents:   500000,
		PaidAt:        &paidAt,
		CreatedAt:     now,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) BuildDomain() *dompayment.Payment {
	return &dompayment.Payment{
		ID:              b.ID,
		AppointmentID:   b.AppointmentID,
		ExternalID:      b.ExternalID,
		Status:          b.Status,
		AmountCents:     b.AmountCents,
		PaidAt:          b.PaidAt,
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *PaymentBuilder) BuildProviderPayment(status string) *paymentgw.ProviderPayment {
	return &paymentgw.ProviderPayment{
		ID:                b.ExternalID,
		Status:            status,
		StatusDetail:      "accredited",
		ExternalReference: b.AppointmentID.String(),
		TransactionAmount: float64(b.AmountCents) / 100,
		DateApproved:      b.PaidAt,
	}
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:              b.ID,
		AppointmentID:   b.AppointmentID,
		ExternalID:      b.ExternalID,
		Status:          string(b.Status),
		AmountCents:     b.AmountCents,
		PaidAt:          b.PaidAt,
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
	}
}
