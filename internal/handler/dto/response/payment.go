package response

import (
	"time"

	"clinicbook/internal/usecase/commands"
	"clinicbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PreferenceResponse struct {
	PreferenceID string    `json:"preference_id"`
	InitPoint    string    `json:"init_point"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func FromPreferenceResult(r *commands.PreferenceResult) *PreferenceResponse {
	return &PreferenceResponse{
		PreferenceID: r.PreferenceID,
		InitPoint:    r.InitPoint,
		ExpiresAt:    r.ExpiresAt,
	}
}

type PaymentResponse struct {
	ID              uuid.UUID  `json:"id"`
	AppointmentID   uuid.UUID  `json:"appointment_id"`
	ExternalID      string     `json:"external_id"`
	Status          string     `json:"status"`
	AmountCents     int64      `json:"amount_cents"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	var resp PaymentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
