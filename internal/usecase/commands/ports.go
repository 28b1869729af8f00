package commands

import (
	"context"
	"time"

	"clinicbook/internal/domain/appointment"
	"clinicbook/internal/domain/payment"
	"clinicbook/internal/domain/schedule"
	"clinicbook/internal/infra/db"
	"clinicbook/internal/infra/paymentgw"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type DoctorSnapshot struct {
	ID                     uuid.UUID
	Name                   string
	Email                  string
	ConsultationPriceCents *int64
}

type PatientSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type SpecialitySnapshot struct {
	ID   uuid.UUID
	Name string
}

type AppointmentSnapshot struct {
	ID               uuid.UUID
	DoctorID         uuid.UUID
	PatientID        uuid.UUID
	SpecialityID     *uuid.UUID
	ScheduledAt      time.Time
	Reason           *string
	Status           appointment.Status
	ExpiresAt        *time.Time
	PriceCents       int64
	PaymentReference *string
	CancelledBy      *uuid.UUID
	CancelledAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s *AppointmentSnapshot) ToDomain() *appointment.Appointment {
	price, _ := appointment.NewMoney(s.PriceCents)
	return appointment.Reconstruct(
		s.ID, s.DoctorID, s.PatientID,
		s.SpecialityID,
		s.ScheduledAt,
		s.Reason,
		s.Status,
		s.ExpiresAt,
		price,
		s.PaymentReference,
		s.CancelledBy,
		s.CancelledAt,
		s.CreatedAt, s.UpdatedAt,
	)
}

// TxRunner runs fn inside one database transaction, committing on nil and
// rolling back otherwise.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	// ConfirmPending moves id to confirmed only while still pending; a lost
	// race surfaces as rowsAffected == 0, never as a blind overwrite.
	ConfirmPending(ctx context.Context, tx db.DBTX, id uuid.UUID, paymentReference string, now time.Time) (int64, error)
	// TransitionStatus is a conditional single-row update guarded on the
	// current status.
	TransitionStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to appointment.Status, cancelledBy *uuid.UUID, now time.Time) (int64, error)
	// CancelExpired cancels every pending appointment whose hold lapsed
	// before now and returns the affected ids.
	CancelExpired(ctx context.Context, tx db.DBTX, now time.Time) ([]uuid.UUID, error)
}

type AppointmentReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
	// HasActiveAt reports a pending or confirmed appointment at exactly the
	// given instant for the doctor or patient.
	DoctorBusyAt(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error)
	PatientBusyAt(ctx context.Context, patientID uuid.UUID, at time.Time) (bool, error)
}

type DoctorReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DoctorSnapshot, error)
}

type PatientReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PatientSnapshot, error)
}

type SpecialityReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpecialitySnapshot, error)
}

type ScheduleReads interface {
	WindowsFor(ctx context.Context, doctorID uuid.UUID) (schedule.WeeklyAgenda, error)
}

type PaymentRepository interface {
	FindByExternalID(ctx context.Context, tx db.DBTX, externalID string) (*payment.Payment, error)
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error
	Update(ctx context.Context, tx db.DBTX, p *payment.Payment) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// PaymentGateway is the boundary to the external payment provider. Webhook
// payloads are never trusted for status; the authoritative record is always
// fetched through here.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, req paymentgw.PreferenceRequest) (*paymentgw.Preference, error)
	GetPayment(ctx context.Context, id string) (*paymentgw.ProviderPayment, error)
}
