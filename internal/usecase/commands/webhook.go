package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"clinicbook/internal/domain/appointment"
	"clinicbook/internal/domain/payment"
	"clinicbook/internal/infra"
	"clinicbook/internal/infra/db"
	"clinicbook/internal/infra/paymentgw"
	"clinicbook/internal/pkg/clock"
	"clinicbook/internal/pkg/errs"
)

var (
	ErrUnknownAppointmentRef = errs.New("payment references no known appointment")
	ErrMissingExternalRef    = errs.New("provider payment carries no external reference")
)

// WebhookNotification is the already-decoded provider notification envelope.
// Only the payment id is taken from it; everything else is re-fetched from
// the provider before any state changes.
type WebhookNotification struct {
	Type      string
	PaymentID string
}

type WebhookCommands interface {
	Reconcile(ctx context.Context, n WebhookNotification) error
}

type webhookCommandsImpl struct {
	tx            TxRunner
	appointments  AppointmentRepository
	reads         AppointmentReads
	payments      PaymentRepository
	notifications NotificationRepository
	gateway       PaymentGateway
	civil         *clock.Civil
	logger        *slog.Logger
}

func NewWebhookCommands(
	tx TxRunner,
	appointments AppointmentRepository,
	reads AppointmentReads,
	payments PaymentRepository,
	notifications NotificationRepository,
	gateway PaymentGateway,
	civil *clock.Civil,
	logger *slog.Logger,
) WebhookCommands {
	return &webhookCommandsImpl{
		tx:            tx,
		appointments:  appointments,
		reads:         reads,
		payments:      payments,
		notifications: notifications,
		gateway:       gateway,
		civil:         civil,
		logger:        logger,
	}
}

// Reconcile processes one provider notification. The notification body is
// treated as a hint only: the payment is re-fetched from the provider, and
// the unique index on the external payment id makes re-deliveries and
// concurrent deliveries collapse into a single applied outcome.
func (c *webhookCommandsImpl) Reconcile(ctx context.Context, n WebhookNotification) error {
	if n.Type != "payment" {
		return nil
	}

	provider, err := c.gateway.GetPayment(ctx, n.PaymentID)
	if err != nil {
		return errs.Wrap(err, "failed to fetch payment from provider")
	}

	switch provider.Status {
	case paymentgw.StatusApproved:
		return c.applyApproved(ctx, provider)
	case "rejected":
		return c.recordRejected(ctx, provider)
	default:
		// pending, in_process and the rest carry no state we act on
		return nil
	}
}

func (c *webhookCommandsImpl) applyApproved(ctx context.Context, provider *paymentgw.ProviderPayment) error {
	appointmentID, err := c.appointmentRef(provider)
	if err != nil {
		return err
	}

	now := c.civil.Now()

	return c.tx.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		existing, err := c.payments.FindByExternalID(ctx, tx, provider.ID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrap(err, "failed to check payment idempotency")
		}
		if existing != nil && existing.Reconciled() {
			// re-delivered webhook for an already applied payment
			return nil
		}

		paidAt := provider.DateApproved
		if paidAt == nil {
			paidAt = &now
		}
		amountCents := toCents(provider.TransactionAmount)

		affected, err := c.appointments.ConfirmPending(ctx, tx, appointmentID, provider.ID, now)
		if err != nil {
			return errs.Wrap(err, "failed to confirm appointment")
		}

		status := payment.StatusApproved
		if affected == 0 {
			alreadyApplied, resolveErr := c.resolveLostConfirm(ctx, appointmentID, provider.ID)
			if resolveErr != nil {
				return resolveErr
			}
			if !alreadyApplied {
				// approved money against a hold the sweeper (or the patient)
				// already cancelled: record it for manual follow-up, never
				// revive the appointment
				status = payment.StatusIgnored
				c.logger.Error("approved payment for non-pending appointment",
					"event", "payment_inconsistency",
					"appointment_id", appointmentID.String(),
					"external_payment_id", provider.ID,
					"amount_cents", amountCents,
				)
			}
		}

		if existing != nil {
			existing.Status = status
			existing.PaidAt = paidAt
			existing.UpdatedAt = now
			if err := c.payments.Update(ctx, tx, existing); err != nil {
				return errs.Wrap(err, "failed to update payment record")
			}
		} else {
			record := payment.New(appointmentID, provider.ID, status, amountCents, paidAt, now)
			if err := c.payments.Create(ctx, tx, record); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					// a concurrent delivery inserted first; it owns the outcome
					return nil
				}
				return errs.Wrap(err, "failed to record payment")
			}
		}

		if status == payment.StatusApproved && affected > 0 {
			return c.enqueueConfirmed(ctx, tx, appointmentID, now)
		}
		return nil
	})
}

func (c *webhookCommandsImpl) recordRejected(ctx context.Context, provider *paymentgw.ProviderPayment) error {
	appointmentID, err := c.appointmentRef(provider)
	if err != nil {
		return err
	}

	now := c.civil.Now()

	return c.tx.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		existing, err := c.payments.FindByExternalID(ctx, tx, provider.ID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrap(err, "failed to check payment idempotency")
		}
		if existing != nil {
			return nil
		}

		reason := provider.StatusDetail
		record := payment.New(appointmentID, provider.ID, payment.StatusRejected, toCents(provider.TransactionAmount), nil, now)
		record.RejectionReason = &reason
		if err := c.payments.Create(ctx, tx, record); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil
			}
			return errs.Wrap(err, "failed to record rejected payment")
		}
		return nil
	})
}

// resolveLostConfirm distinguishes a re-delivery (the appointment is already
// confirmed by this very payment) from a genuine inconsistency.
func (c *webhookCommandsImpl) resolveLostConfirm(ctx context.Context, appointmentID uuid.UUID, externalID string) (bool, error) {
	snapshot, err := c.reads.FindByID(ctx, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.Mark(err, ErrUnknownAppointmentRef)
		}
		return false, errs.Wrap(err, "failed to load appointment")
	}
	alreadyApplied := snapshot.Status == appointment.StatusConfirmed &&
		snapshot.PaymentReference != nil && *snapshot.PaymentReference == externalID
	return alreadyApplied, nil
}

// toCents converts a provider amount in currency units to cents. Rounding
// absorbs float artifacts like 19.99*100 == 1998.999...
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (c *webhookCommandsImpl) appointmentRef(provider *paymentgw.ProviderPayment) (uuid.UUID, error) {
	if provider.ExternalReference == "" {
		return uuid.Nil, errs.Mark(errs.Newf("payment %s has no external reference", provider.ID), ErrMissingExternalRef)
	}
	id, err := uuid.Parse(provider.ExternalReference)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "malformed external reference"), ErrUnknownAppointmentRef)
	}
	return id, nil
}

func (c *webhookCommandsImpl) enqueueConfirmed(ctx context.Context, tx db.DBTX, appointmentID uuid.UUID, now time.Time) error {
	snapshot, err := c.reads.FindByID(ctx, appointmentID)
	if err != nil {
		return errs.Wrap(err, "failed to load appointment for notification")
	}

	payload, err := json.Marshal(appointmentEventPayload{
		AppointmentID: snapshot.ID,
		DoctorID:      snapshot.DoctorID,
		PatientID:     snapshot.PatientID,
		ScheduledAt:   snapshot.ScheduledAt,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}
	if err := c.notifications.CreateJob(ctx, tx, "email", "appointment.confirmed", payload, now); err != nil {
		return errs.Wrap(err, "failed to enqueue notification")
	}
	return nil
}
