package commands

import (
	"github.com/google/uuid"

	"clinicbook/internal/pkg/errs"
)

var (
	ErrPatientNotFound     = errs.New("patient not found")
	ErrDoctorNotFound      = errs.New("doctor not found")
	ErrSpecialityNotFound  = errs.New("speciality not found")
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrDoctorUnpriced      = errs.New("doctor has no consultation price configured")
	ErrScheduleNotFound    = errs.New("doctor has no published schedule")
	ErrSlotTaken           = errs.New("slot is already taken")
	ErrInvalidDateTime     = errs.New("invalid appointment date time")
	ErrRuleViolation       = errs.New("booking rule violation")
	ErrNotActor            = errs.New("appointment does not belong to the requesting user")
	ErrHoldTooShort        = errs.New("hold is about to expire")
	ErrStateConflict       = errs.New("appointment state does not allow this operation")
)

const (
	RolePatient = "patient"
	RoleStaff   = "staff"
)

// Actor identifies who is issuing a command. Staff act on any appointment;
// patients only on their own.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}
