package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AppointmentView struct {
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
	CancelledBy      *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type AppointmentListItem struct {
	ID          uuid.UUID `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentView struct {
	ID              uuid.UUID  `json:"id"`
	AppointmentID   uuid.UUID  `json:"appointment_id"`
	ExternalID      string     `json:"external_id"`
	Status          string     `json:"status"`
	AmountCents     int64      `json:"amount_cents"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type AvailabilityWindowView struct {
	DayOfWeek   int    `json:"day_of_week"`
	Start       string `json:"start"`
	End         string `json:"end"`
	SlotMinutes int    `json:"slot_minutes"`
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*AppointmentListItem, error)
}

type PaymentReadStore interface {
	FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*PaymentView, error)
}

type ScheduleViewStore interface {
	WindowViewsFor(ctx context.Context, doctorID uuid.UUID) ([]*AvailabilityWindowView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*AppointmentListItem, error)
	DoctorAvailability(ctx context.Context, doctorID uuid.UUID) ([]*AvailabilityWindowView, error)
	PaymentByAppointment(ctx context.Context, appointmentID uuid.UUID) (*PaymentView, error)
}

type appointmentQueriesImpl struct {
	appointments AppointmentReadStore
	payments     PaymentReadStore
	schedules    ScheduleViewStore
}

func NewAppointmentQueries(
	appointments AppointmentReadStore,
	payments PaymentReadStore,
	schedules ScheduleViewStore,
) AppointmentQueries {
	return &appointmentQueriesImpl{
		appointments: appointments,
		payments:     payments,
		schedules:    schedules,
	}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	return q.appointments.FindByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*AppointmentListItem, error) {
	return q.appointments.FindByPatientID(ctx, patientID)
}

func (q *appointmentQueriesImpl) DoctorAvailability(ctx context.Context, doctorID uuid.UUID) ([]*AvailabilityWindowView, error) {
	return q.schedules.WindowViewsFor(ctx, doctorID)
}

func (q *appointmentQueriesImpl) PaymentByAppointment(ctx context.Context, appointmentID uuid.UUID) (*PaymentView, error) {
	return q.payments.FindByAppointmentID(ctx, appointmentID)
}
