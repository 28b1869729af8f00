package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending         = errors.New("appointment is not pending")
	ErrNotConfirmed       = errors.New("appointment is not confirmed")
	ErrAlreadyCancelled   = errors.New("appointment is already cancelled")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrCancelWindowClosed = errors.New("cancellation window has closed")
)

// Appointment is the aggregate every competing writer (reservation,
// expiration sweep, webhook reconciliation, explicit cancellation) mutates.
// expiresAt is present if and only if the status is pending.
type Appointment struct {
	id               uuid.UUID
	doctorID         uuid.UUID
	patientID        uuid.UUID
	specialityID     *uuid.UUID
	scheduledAt      time.Time
	reason           *string
	status           Status
	expiresAt        *time.Time
	priceAtBooking   Money
	paymentReference *string
	cancelledBy      *uuid.UUID
	cancelledAt      *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewHold creates the time-limited reservation of a slot: a pending
// appointment whose hold lapses at now + ttl.
func NewHold(
	doctorID, patientID uuid.UUID,
	specialityID *uuid.UUID,
	scheduledAt time.Time,
	reason *string,
	price Money,
	now time.Time,
	ttl time.Duration,
) *Appointment {
	expiresAt := now.Add(ttl)
	return &Appointment{
		id:             uuid.New(),
		doctorID:       doctorID,
		patientID:      patientID,
		specialityID:   specialityID,
		scheduledAt:    scheduledAt,
		reason:         reason,
		status:         StatusPending,
		expiresAt:      &expiresAt,
		priceAtBooking: price,
		createdAt:      now,
		updatedAt:      now,
	}
}

func Reconstruct(
	id, doctorID, patientID uuid.UUID,
	specialityID *uuid.UUID,
	scheduledAt time.Time,
	reason *string,
	status Status,
	expiresAt *time.Time,
	priceAtBooking Money,
	paymentReference *string,
	cancelledBy *uuid.UUID,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:               id,
		doctorID:         doctorID,
		patientID:        patientID,
		specialityID:     specialityID,
		scheduledAt:      scheduledAt,
		reason:           reason,
		status:           status,
		expiresAt:        expiresAt,
		priceAtBooking:   priceAtBooking,
		paymentReference: paymentReference,
		cancelledBy:      cancelledBy,
		cancelledAt:      cancelledAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Confirm applies an approved payment. A payment that was in flight before
// the hold lapsed still confirms, so the hold expiry is deliberately not
// checked here; the reverse race is resolved by the status guard alone.
func (a *Appointment) Confirm(paymentReference string, now time.Time) error {
	if !a.status.CanTransitionTo(StatusConfirmed) {
		if a.status == StatusCancelled {
			return ErrAlreadyCancelled
		}
		return ErrNotPending
	}
	a.status = StatusConfirmed
	a.expiresAt = nil
	a.paymentReference = &paymentReference
	a.updatedAt = now
	return nil
}

// Cancel applies an explicit cancellation by a user. A confirmed appointment
// only cancels while at least noticeHours remain before the visit.
func (a *Appointment) Cancel(by uuid.UUID, now time.Time, noticeHours int) error {
	if !a.status.CanTransitionTo(StatusCancelled) {
		if a.status == StatusCancelled {
			return ErrAlreadyCancelled
		}
		return ErrIllegalTransition
	}
	// holds cancel freely; a confirmed visit needs enough notice
	if a.status == StatusConfirmed {
		notice := time.Duration(noticeHours) * time.Hour
		if a.scheduledAt.Sub(now) < notice {
			return ErrCancelWindowClosed
		}
	}

	a.status = StatusCancelled
	a.expiresAt = nil
	a.cancelledBy = &by
	a.cancelledAt = &now
	a.updatedAt = now
	return nil
}

// Complete records the visit having taken place, signalled by the
// clinical-record collaborator.
func (a *Appointment) Complete(now time.Time) error {
	if !a.status.CanTransitionTo(StatusCompleted) {
		return ErrNotConfirmed
	}
	a.status = StatusCompleted
	a.updatedAt = now
	return nil
}

func (a *Appointment) HoldExpired(now time.Time) bool {
	return a.status == StatusPending && a.expiresAt != nil && a.expiresAt.Before(now)
}

func (a *Appointment) ID() uuid.UUID             { return a.id }
func (a *Appointment) DoctorID() uuid.UUID       { return a.doctorID }
func (a *Appointment) PatientID() uuid.UUID      { return a.patientID }
func (a *Appointment) SpecialityID() *uuid.UUID  { return a.specialityID }
func (a *Appointment) ScheduledAt() time.Time    { return a.scheduledAt }
func (a *Appointment) Reason() *string           { return a.reason }
func (a *Appointment) Status() Status            { return a.status }
func (a *Appointment) ExpiresAt() *time.Time     { return a.expiresAt }
func (a *Appointment) PriceAtBooking() Money     { return a.priceAtBooking }
func (a *Appointment) PaymentReference() *string { return a.paymentReference }
func (a *Appointment) CancelledBy() *uuid.UUID   { return a.cancelledBy }
func (a *Appointment) CancelledAt() *time.Time   { return a.cancelledAt }
func (a *Appointment) CreatedAt() time.Time      { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time      { return a.updatedAt }
