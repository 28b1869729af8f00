package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clinicbook/internal/domain/appointment"
	"clinicbook/internal/infra"
	"clinicbook/internal/infra/paymentgw"
	"clinicbook/internal/pkg/clock"
	"clinicbook/internal/pkg/config"
	"clinicbook/internal/pkg/errs"
)

type PreferenceResult struct {
	PreferenceID string
	InitPoint    string
	ExpiresAt    time.Time
}

type PaymentCommands interface {
	CreatePreference(ctx context.Context, actor Actor, appointmentID uuid.UUID) (*PreferenceResult, error)
}

type paymentCommandsImpl struct {
	reads    AppointmentReads
	doctors  DoctorReads
	patients PatientReads
	gateway  PaymentGateway
	civil    *clock.Civil
	payment  config.PaymentConfig
}

func NewPaymentCommands(
	reads AppointmentReads,
	doctors DoctorReads,
	patients PatientReads,
	gateway PaymentGateway,
	civil *clock.Civil,
	payment config.PaymentConfig,
) PaymentCommands {
	return &paymentCommandsImpl{
		reads:    reads,
		doctors:  doctors,
		patients: patients,
		gateway:  gateway,
		civil:    civil,
		payment:  payment,
	}
}

// CreatePreference asks the provider for a payable preference for a held
// appointment. A hold with less than MinHoldRemaining left is refused so the
// patient is not sent into a checkout that will lapse under them.
func (c *paymentCommandsImpl) CreatePreference(ctx context.Context, actor Actor, appointmentID uuid.UUID) (*PreferenceResult, error) {
	snapshot, err := c.reads.FindByID(ctx, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAppointmentNotFound)
		}
		return nil, errs.Wrap(err, "failed to load appointment")
	}

	if !actor.IsStaff() && snapshot.PatientID != actor.ID {
		return nil, errs.Mark(errs.New("not the booking patient"), ErrNotActor)
	}

	if snapshot.Status != appointment.StatusPending || snapshot.ExpiresAt == nil {
		return nil, errs.Mark(errs.New("appointment is not awaiting payment"), ErrStateConflict)
	}

	now := c.civil.Now()
	if snapshot.ExpiresAt.Sub(now) < c.payment.MinHoldRemaining {
		return nil, errs.Mark(errs.New("hold lapses too soon to start checkout"), ErrHoldTooShort)
	}

	doctor, err := c.doctors.FindByID(ctx, snapshot.DoctorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve doctor")
	}
	patient, err := c.patients.FindByID(ctx, snapshot.PatientID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve patient")
	}

	price, err := appointment.NewMoney(snapshot.PriceCents)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored price")
	}

	pref, err := c.gateway.CreatePreference(ctx, paymentgw.PreferenceRequest{
		Title:             "Consultation with " + doctor.Name,
		Quantity:          1,
		UnitPrice:         price.Units(),
		PayerEmail:        patient.Email,
		PayerName:         patient.Name,
		ExternalReference: snapshot.ID.String(),
		ExpiresAt:         *snapshot.ExpiresAt,
		SuccessURL:        c.payment.SuccessURL,
		FailureURL:        c.payment.FailureURL,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment preference")
	}

	return &PreferenceResult{
		PreferenceID: pref.ID,
		InitPoint:    pref.InitPoint,
		ExpiresAt:    *snapshot.ExpiresAt,
	}, nil
}
