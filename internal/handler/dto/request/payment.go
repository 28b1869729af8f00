package request

import (
	"github.com/google/uuid"
)

type CreatePreferenceRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" binding:"required"`
}

// WebhookNotificationRequest is the provider's notification envelope. Only
// these two fields are read; everything else in the body is ignored.
type WebhookNotificationRequest struct {
	Type string `json:"type" binding:"required"`
	Data struct {
		ID string `json:"id" binding:"required"`
	} `json:"data" binding:"required"`
}
