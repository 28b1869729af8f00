package response

import (
	"time"

	"clinicbook/internal/usecase/commands"
	"clinicbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HoldResponse struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	ExpiresAt     time.Time `json:"expires_at"`
	PriceCents    int64     `json:"price_cents"`
	Status        string    `json:"status"`
}

func FromPreReserveResult(r *commands.PreReserveResult) *HoldResponse {
	return &HoldResponse{
		AppointmentID: r.AppointmentID,
		ScheduledAt:   r.ScheduledAt,
		ExpiresAt:     r.ExpiresAt,
		PriceCents:    r.PriceCents,
		Status:        "pending",
	}
}

type AppointmentResponse struct {
	ID               uuid.UUID  `json:"id"`
	DoctorID         uuid.UUID  `json:"doctor_id"`
	DoctorName       string     `json:"doctor_name"`
	PatientID        uuid.UUID  `json:"patient_id"`
	SpecialityID     *uuid.UUID `json:"speciality_id,omitempty"`
	SpecialityName   *string    `json:"speciality_name,omitempty"`
	ScheduledAt      time.Time  `json:"scheduled_at"`
	Reason           *string    `json:"reason,omitempty"`
	Status           string     `json:"status"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	PriceCents       int64      `json:"price_cents"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromAppointmentView(rm *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

type AppointmentListResponse struct {
	ID          uuid.UUID `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAppointmentListItem(rm *queries.AppointmentListItem) *AppointmentListResponse {
	var resp AppointmentListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

type AvailabilityWindowResponse struct {
	DayOfWeek   int    `json:"day_of_week"`
	Start       string `json:"start"`
	End         string `json:"end"`
	SlotMinutes int    `json:"slot_minutes"`
}

func FromAvailabilityWindows(views []*queries.AvailabilityWindowView) []*AvailabilityWindowResponse {
	resp := make([]*AvailabilityWindowResponse, len(views))
	for i, v := range views {
		var w AvailabilityWindowResponse
		_ = copier.Copy(&w, v)
		resp[i] = &w
	}
	return resp
}
