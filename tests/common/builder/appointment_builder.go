//go:build unit || e2e

package builder

import (
	"time"

	domappointment "clinicbook/internal/domain/appointment"
	reqdto "clinicbook/internal/handler/dto/request"
	"clinicbook/internal/usecase/commands"
	"clinicbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID               uuid.UUID
	DoctorID         uuid.UUID
	DoctorName       string
	PatientID        uuid.UUID
	SpecialityID     *uuid.UUID
	ScheduledAt      time.Time
	Reason           *string
	Status           domappointment.Status
	ExpiresAt        *time.Time
	PriceCents       int64
	PaymentReference *string
	CancelledBy      *uuid.UUID
	CancelledAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Now()
	expiresAt := now.Add(10 * time.Minute)
	specialityID := uuid.New()
	return &AppointmentBuilder{
		ID:           uuid.New(),
		DoctorID:     uuid.New(),
		DoctorName:   "Dr. Ana Suarez",
		PatientID:    uuid.New(),
		SpecialityID: &specialityID,
		ScheduledAt:  now.Add(48 * time.Hour).Truncate(time.Hour),
		Status:       domappointment.StatusPending,
		ExpiresAt:    &expiresAt,
		PriceCents:   500000,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithStatus(status domappointment.Status) *AppointmentBuilder {
	b.Status = status
	if status != domappointment.StatusPending {
		b.ExpiresAt = nil
	}
	return b
}

func (b *AppointmentBuilder) WithExpiresAt(t time.Time) *AppointmentBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *AppointmentBuilder) WithPaymentReference(ref string) *AppointmentBuilder {
	b.PaymentReference = &ref
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() *domappointment.Appointment {
	price, _ := domappointment.NewMoney(b.PriceCents)
	return domappointment.Reconstruct(
		b.ID, b.DoctorID, b.PatientID,
		b.SpecialityID,
		b.ScheduledAt,
		b.Reason,
		b.Status,
		b.ExpiresAt,
		price,
		b.PaymentReference,
		b.CancelledBy,
		b.CancelledAt,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *AppointmentBuilder) BuildSnapshot() *commands.AppointmentSnapshot {
	return &commands.AppointmentSnapshot{
		ID:               b.ID,
		DoctorID:         b.DoctorID,
		PatientID:        b.PatientID,
		SpecialityID:     b.SpecialityID,
		ScheduledAt:      b.ScheduledAt,
		Reason:           b.Reason,
		Status:           b.Status,
		ExpiresAt:        b.ExpiresAt,
		PriceCents:       b.PriceCents,
		PaymentReference: b.PaymentReference,
		CancelledBy:      b.CancelledBy,
		CancelledAt:      b.CancelledAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:               b.ID,
		DoctorID:         b.DoctorID,
		DoctorName:       b.DoctorName,
		PatientID:        b.PatientID,
		SpecialityID:     b.SpecialityID,
		ScheduledAt:      b.ScheduledAt,
		Reason:           b.Reason,
		Status:           string(b.Status),
		ExpiresAt:        b.ExpiresAt,
		PriceCents:       b.PriceCents,
		PaymentReference: b.PaymentReference,
		CancelledBy:      b.CancelledBy,
		CancelledAt:      b.CancelledAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	return &queries.AppointmentListItem{
		ID:          b.ID,
		DoctorID:    b.DoctorID,
		DoctorName:  b.DoctorName,
		ScheduledAt: b.ScheduledAt,
		Status:      string(b.Status),
		PriceCents:  b.PriceCents,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildPreReserveRequestDTO(scheduledAt string) reqdto.PreReserveRequest {
	return reqdto.PreReserveRequest{
		DoctorID:     b.DoctorID,
		SpecialityID: b.SpecialityID,
		ScheduledAt:  scheduledAt,
	}
}
