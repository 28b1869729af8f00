package request

import (
	"github.com/google/uuid"
)

type PreReserveRequest struct {
	DoctorID     uuid.UUID  `json:"doctor_id" binding:"required"`
	SpecialityID *uuid.UUID `json:"speciality_id,omitempty"`
	// ScheduledAt is a wall-clock value in the clinic's zone,
	// e.g. "2026-09-14T10:30".
	ScheduledAt string  `json:"scheduled_at" binding:"required"`
	Reason      *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}
