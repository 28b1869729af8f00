//go:build unit || e2e

package builder

import (
	"clinicbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type DoctorBuilder struct {
	ID         uuid.UUID
	Name       string
	Email      string
	PriceCents *int64
}

func NewDoctorBuilder() *DoctorBuilder {
	price := int64(500000)
	return &DoctorBuilder{
		ID:         uuid.New(),
		Name:       "Dr. Ana Suarez",
		Email:      "ana.suarez@clinic.example",
		PriceCents: &price,
	}
}

func (b *DoctorBuilder) WithoutPrice() *DoctorBuilder {
	b.PriceCents = nil
	return b
}

func (b *DoctorBuilder) BuildSnapshot() *commands.DoctorSnapshot {
	return &commands.DoctorSnapshot{
		ID:                     b.ID,
		Name:                   b.Name,
		Email:                  b.Email,
		ConsultationPriceCents: b.PriceCents,
	}
}

type PatientBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func NewPatientBuilder() *PatientBuilder {
	return &PatientBuilder{
		ID:    uuid.New(),
		Name:  "Marta Lopez",
		Email: "marta.lopez@example.com",
	}
}

func (b *PatientBuilder) BuildSnapshot() *commands.PatientSnapshot {
	return &commands.PatientSnapshot{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *PatientBuilder) BuildActor() commands.Actor {
	return commands.Actor{ID: b.ID, Role: commands.RolePatient}
}

type SpecialityBuilder struct {
	ID   uuid.UUID
	Name string
}

func NewSpecialityBuilder() *SpecialityBuilder {
	return &SpecialityBuilder{
		ID:   uuid.New(),
		Name: "Cardiology",
	}
}

func (b *SpecialityBuilder) BuildSnapshot() *commands.SpecialitySnapshot {
	return &commands.SpecialitySnapshot{
		ID:   b.ID,
		Name: b.Name,
	}
}
