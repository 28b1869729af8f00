package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"clinicbook/internal/domain/appointment"
	"clinicbook/internal/infra"
	"clinicbook/internal/infra/db"
	"clinicbook/internal/pkg/clock"
	"clinicbook/internal/pkg/config"
	"clinicbook/internal/pkg/errs"
)

type PreReserveInput struct {
	PatientID    uuid.UUID
	DoctorID     uuid.UUID
	SpecialityID *uuid.UUID
	// LocalDateTime is the requested slot as a wall-clock value in the
	// clinic's zone, e.g. "2026-09-14T10:30".
	LocalDateTime string
	Reason        *string
}

type PreReserveResult struct {
	AppointmentID uuid.UUID
	ScheduledAt   time.Time
	ExpiresAt     time.Time
	PriceCents    int64
}

type AppointmentCommands interface {
	PreReserve(ctx context.Context, actor Actor, input PreReserveInput) (*PreReserveResult, error)
	Cancel(ctx context.Context, actor Actor, appointmentID uuid.UUID) error
	Complete(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentCommandsImpl struct {
	tx            TxRunner
	appointments  AppointmentRepository
	reads         AppointmentReads
	doctors       DoctorReads
	patients      PatientReads
	specialities  SpecialityReads
	schedules     ScheduleReads
	notifications NotificationRepository
	civil         *clock.Civil
	clinic        config.ClinicConfig
}

func NewAppointmentCommands(
	tx TxRunner,
	appointments AppointmentRepository,
	reads AppointmentReads,
	doctors DoctorReads,
	patients PatientReads,
	specialities SpecialityReads,
	schedules ScheduleReads,
	notifications NotificationRepository,
	civil *clock.Civil,
	clinic config.ClinicConfig,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		tx:            tx,
		appointments:  appointments,
		reads:         reads,
		doctors:       doctors,
		patients:      patients,
		specialities:  specialities,
		schedules:     schedules,
		notifications: notifications,
		civil:         civil,
		clinic:        clinic,
	}
}

func (c *appointmentCommandsImpl) rules() appointment.BookingRules {
	return appointment.BookingRules{
		ClosedDay:      time.Weekday(c.clinic.ClosedWeekday),
		OpenHour:       c.clinic.OpenHour,
		CloseHour:      c.clinic.CloseHour,
		SlotMinutes:    c.clinic.SlotMinutes,
		MinNoticeHours: c.clinic.MinNoticeHours,
	}
}

// PreReserve validates the candidate slot against the clinic rules and the
// doctor's agenda, then creates the time-limited hold. The occupancy
// pre-checks give a fast, readable rejection; the database's partial unique
// indexes remain the arbiter when two writers race past them.
func (c *appointmentCommandsImpl) PreReserve(ctx context.Context, actor Actor, input PreReserveInput) (*PreReserveResult, error) {
	if !actor.IsStaff() && actor.ID != input.PatientID {
		return nil, errs.Mark(errs.New("patient mismatch"), ErrNotActor)
	}

	patient, err := c.patients.FindByID(ctx, input.PatientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPatientNotFound)
		}
		return nil, errs.Wrap(err, "failed to resolve patient")
	}

	doctor, err := c.doctors.FindByID(ctx, input.DoctorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDoctorNotFound)
		}
		return nil, errs.Wrap(err, "failed to resolve doctor")
	}
	if doctor.ConsultationPriceCents == nil {
		return nil, errs.Mark(errs.New("doctor has no price"), ErrDoctorUnpriced)
	}

	if input.SpecialityID != nil {
		if _, err := c.specialities.FindByID(ctx, *input.SpecialityID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrSpecialityNotFound)
			}
			return nil, errs.Wrap(err, "failed to resolve speciality")
		}
	}

	scheduledAt, err := c.civil.ParseLocal(input.LocalDateTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateTime)
	}

	agenda, err := c.schedules.WindowsFor(ctx, input.DoctorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrScheduleNotFound)
		}
		return nil, errs.Wrap(err, "failed to load doctor schedule")
	}

	now := c.civil.Now()
	if ruleErr := c.rules().Validate(scheduledAt, now, agenda); ruleErr != nil {
		return nil, errs.Mark(ruleErr, ErrRuleViolation)
	}

	if busy, err := c.reads.DoctorBusyAt(ctx, input.DoctorID, scheduledAt); err != nil {
		return nil, errs.Wrap(err, "failed to check doctor occupancy")
	} else if busy {
		return nil, errs.Mark(errs.New("doctor already booked at that time"), ErrSlotTaken)
	}
	if busy, err := c.reads.PatientBusyAt(ctx, input.PatientID, scheduledAt); err != nil {
		return nil, errs.Wrap(err, "failed to check patient occupancy")
	} else if busy {
		return nil, errs.Mark(errs.New("patient already booked at that time"), ErrSlotTaken)
	}

	price, err := appointment.NewMoney(*doctor.ConsultationPriceCents)
	if err != nil {
		return nil, errs.Wrap(err, "invalid doctor price")
	}

	hold := appointment.NewHold(
		doctor.ID, patient.ID, input.SpecialityID,
		scheduledAt, input.Reason, price, now, c.clinic.HoldTTL,
	)

	err = c.tx.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := c.appointments.Create(ctx, tx, hold); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSlotTaken)
			}
			return errs.Wrap(err, "failed to create hold")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PreReserveResult{
		AppointmentID: hold.ID(),
		ScheduledAt:   hold.ScheduledAt(),
		ExpiresAt:     *hold.ExpiresAt(),
		PriceCents:    hold.PriceAtBooking().Cents(),
	}, nil
}

func (c *appointmentCommandsImpl) Cancel(ctx context.Context, actor Actor, appointmentID uuid.UUID) error {
	snapshot, err := c.reads.FindByID(ctx, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrAppointmentNotFound)
		}
		return errs.Wrap(err, "failed to load appointment")
	}

	if !actor.IsStaff() && snapshot.PatientID != actor.ID {
		return errs.Mark(errs.New("not the booking patient"), ErrNotActor)
	}

	entity := snapshot.ToDomain()
	from := entity.Status()
	now := c.civil.Now()
	if err := entity.Cancel(actor.ID, now, c.clinic.CancelNoticeHours); err != nil {
		return err
	}

	return c.tx.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		cancelledBy := actor.ID
		affected, err := c.appointments.TransitionStatus(ctx, tx, appointmentID, from, appointment.StatusCancelled, &cancelledBy, now)
		if err != nil {
			return errs.Wrap(err, "failed to cancel appointment")
		}
		if affected == 0 {
			// another writer moved the status first
			return errs.Mark(errs.New("appointment changed concurrently"), ErrStateConflict)
		}

		return c.enqueueAppointmentEvent(ctx, tx, "appointment.cancelled", snapshot, now)
	})
}

func (c *appointmentCommandsImpl) Complete(ctx context.Context, appointmentID uuid.UUID) error {
	snapshot, err := c.reads.FindByID(ctx, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrAppointmentNotFound)
		}
		return errs.Wrap(err, "failed to load appointment")
	}

	entity := snapshot.ToDomain()
	now := c.civil.Now()
	if err := entity.Complete(now); err != nil {
		return err
	}

	return c.tx.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		affected, err := c.appointments.TransitionStatus(ctx, tx, appointmentID, appointment.StatusConfirmed, appointment.StatusCompleted, nil, now)
		if err != nil {
			return errs.Wrap(err, "failed to complete appointment")
		}
		if affected == 0 {
			return errs.Mark(errs.New("appointment changed concurrently"), ErrStateConflict)
		}
		return nil
	})
}

type appointmentEventPayload struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	PatientID     uuid.UUID `json:"patient_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

func (c *appointmentCommandsImpl) enqueueAppointmentEvent(ctx context.Context, tx db.DBTX, topic string, snapshot *AppointmentSnapshot, now time.Time) error {
	payload, err := json.Marshal(appointmentEventPayload{
		AppointmentID: snapshot.ID,
		DoctorID:      snapshot.DoctorID,
		PatientID:     snapshot.PatientID,
		ScheduledAt:   snapshot.ScheduledAt,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}
	if err := c.notifications.CreateJob(ctx, tx, "email", topic, payload, now); err != nil {
		return errs.Wrap(err, "failed to enqueue notification")
	}
	return nil
}
