//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"clinicbook/internal/domain/appointment"
	"clinicbook/internal/domain/payment"
	"clinicbook/internal/infra"
	"clinicbook/internal/infra/db"
	"clinicbook/internal/pkg/clock"
	"clinicbook/internal/pkg/config"
	"clinicbook/internal/usecase/commands"
	"clinicbook/tests/common/builder"
	commandsmock "clinicbook/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	tx            *commandsmock.MockTxRunner
	appointments  *commandsmock.MockAppointmentRepository
	reads         *commandsmock.MockAppointmentReads
	payments      *commandsmock.MockPaymentRepository
	notifications *commandsmock.MockNotificationRepository
	gateway       *commandsmock.MockPaymentGateway
	mockClock     *clock.MockClock
	sut           commands.WebhookCommands
}

func (s *WebhookCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tx = commandsmock.NewMockTxRunner(s.ctrl)
	s.appointments = commandsmock.NewMockAppointmentRepository(s.ctrl)
	s.reads = commandsmock.NewMockAppointmentReads(s.ctrl)
	s.payments = commandsmock.NewMockPaymentRepository(s.ctrl)
	s.notifications = commandsmock.NewMockNotificationRepository(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)

	cfg := config.NewTestConfig()
	loc, err := cfg.Clinic.Location()
	s.Require().NoError(err)
	s.mockClock = clock.NewMockClock(time.Date(2026, 9, 14, 9, 0, 0, 0, loc))

	s.sut = commands.NewWebhookCommands(
		s.tx,
		s.appointments,
		s.reads,
		s.payments,
		s.notifications,
		s.gateway,
		clock.NewCivil(s.mockClock, loc),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()
}

func (s *WebhookCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestWebhookCommandsSuite(t *testing.T) {
	suite.Run(t, new(WebhookCommandsTestSuite))
}

func (s *WebhookCommandsTestSuite) TestReconcile_Approved() {
	ctx := context.Background()

	s.Run("success: approved payment confirms the hold and records the payment", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("approved")
		notification := commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
		s.payments.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), provider.ID).
			Return(nil, notFoundErr("payment not found"))
		s.appointments.EXPECT().
			ConfirmPending(gomock.Any(), gomock.Any(), pb.AppointmentID, provider.ID, gomock.Any()).
			Return(int64(1), nil)

		var recorded *payment.Payment
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, p *payment.Payment) error {
				recorded = p
				return nil
			},
		)

		snap := builder.NewAppointmentBuilder().
			With(func(b *builder.AppointmentBuilder) { b.ID = pb.AppointmentID }).
			WithStatus(appointment.StatusConfirmed).
			BuildSnapshot()
		s.reads.EXPECT().FindByID(gomock.Any(), pb.AppointmentID).Return(snap, nil)
		s.notifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "appointment.confirmed", gomock.Any(), gomock.Any()).
			Return(nil)

		s.Require().NoError(s.sut.Reconcile(ctx, notification))

		s.Require().NotNil(recorded)
		s.Equal(payment.StatusApproved, recorded.Status)
		s.Equal(pb.AppointmentID, recorded.AppointmentID)
		s.Equal(provider.ID, recorded.ExternalID)
		s.Equal(pb.AmountCents, recorded.AmountCents)
		s.Require().NotNil(recorded.PaidAt)
		s.True(recorded.PaidAt.Equal(*provider.DateApproved))
	})

	s.Run("success: missing date_approved falls back to now", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("approved")
		provider.DateApproved = nil

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
		s.payments.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), provider.ID).
			Return(nil, notFoundErr("payment not found"))
		s.appointments.EXPECT().
			ConfirmPending(gomock.Any(), gomock.Any(), pb.AppointmentID, provider.ID, gomock.Any()).
			Return(int64(1), nil)

		var recorded *payment.Payment
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, p *payment.Payment) error {
				recorded = p
				return nil
			},
		)
		s.reads.EXPECT().FindByID(gomock.Any(), pb.AppointmentID).
			Return(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.ID = pb.AppointmentID }).BuildSnapshot(), nil)
		s.notifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "appointment.confirmed", gomock.Any(), gomock.Any()).
			Return(nil)

		s.Require().NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}))
		s.Require().NotNil(recorded)
		s.Require().NotNil(recorded.PaidAt)
		s.True(recorded.PaidAt.Equal(s.mockClock.Now()))
	})

	s.Run("success: fractional amounts round to whole cents", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("approved")
		provider.TransactionAmount = 19.99

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
		s.payments.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), provider.ID).
			Return(nil, notFoundErr("payment not found"))
		s.appointments.EXPECT().
			ConfirmPending(gomock.Any(), gomock.Any(), pb.AppointmentID, provider.ID, gomock.Any()).
			Return(int64(1), nil)

		var recorded *payment.Payment
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, p *payment.Payment) error {
				recorded = p
				return nil
			},
		)
		s.reads.EXPECT().FindByID(gomock.Any(), pb.AppointmentID).
			Return(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.ID = pb.AppointmentID }).BuildSnapshot(), nil)
		s.notifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "appointment.confirmed", gomock.Any(), gomock.Any()).
			Return(nil)

		s.Require().NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}))

		// 19.99 * 100 is 1998.999... in float arithmetic
		s.Require().NotNil(recorded)
		s.Equal(int64(1999), recorded.AmountCents)
	})

	s.Run("no-op: payment already reconciled", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("approved")

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
		s.payments.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), provider.ID).
			Return(pb.BuildDomain(), nil)

		s.NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}))
	})

	s.Run("no-op: lost confirm already applied by this payment", func() {
		// the appointment was confirmed with this very payment reference,
		// so a second delivery after a crashed first run applies cleanly
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("approved")

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
		s.payments.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), provider.ID).
			Return(nil, notFoundErr("payment not found"))
		s.appointments.EXPECT().
			ConfirmPending(gomock.Any(), gomock.Any(), pb.AppointmentID, provider.ID, gomock.Any()).
			Return(int64(0), nil)

		snap := builder.NewAppointmentBuilder().
			With(func(b *builder.AppointmentBuilder) { b.ID = pb.AppointmentID }).
			WithStatus(appointment.StatusConfirmed).
			WithPaymentReference(provider.ID).
			BuildSnapshot()
		s.reads.EXPECT().FindByID(gomock.Any(), pb.AppointmentID).Return(snap, nil)

		var recorded *payment.Payment
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, p *payment.Payment) error {
				recorded = p
				return nil
			},
		)

		s.Require().NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}))

		// the payment row is approved, but no notification goes out again
		s.Require().NotNil(recorded)
		s.Equal(payment.StatusApproved, recorded.Status)
	})

	s.Run("inconsistency: approved payment for a cancelled hold is kept as ignored", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("approved")

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
		s.payments.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), provider.ID).
			Return(nil, notFoundErr("payment not found"))
		s.appointments.EXPECT().
			ConfirmPending(gomock.Any(), gomock.Any(), pb.AppointmentID, provider.ID, gomock.Any()).
			Return(int64(0), nil)

		snap := builder.NewAppointmentBuilder().
			With(func(b *builder.AppointmentBuilder) { b.ID = pb.AppointmentID }).
			WithStatus(appointment.StatusCancelled).
			BuildSnapshot()
		s.reads.EXPECT().FindByID(gomock.Any(), pb.AppointmentID).Return(snap, nil)

		var recorded *payment.Payment
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, p *payment.Payment) error {
				recorded = p
				return nil
			},
		)

		s.Require().NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}))

		// the appointment is never revived; the money is parked for operators
		s.Require().NotNil(recorded)
		s.Equal(payment.StatusIgnored, recorded.Status)
	})

	s.Run("no-op: concurrent delivery inserted the payment row first", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("approved")

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
		s.payments.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), provider.ID).
			Return(nil, notFoundErr("payment not found"))
		s.appointments.EXPECT().
			ConfirmPending(gomock.Any(), gomock.Any(), pb.AppointmentID, provider.ID, gomock.Any()).
			Return(int64(1), nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("payment already recorded", errors.New("duplicate key"), infra.KindDuplicateKey))

		s.NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}))
	})

	s.Run("error: approved payment without external reference", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("approved")
		provider.ExternalReference = ""

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)

		err := s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID})
		s.ErrorIs(err, commands.ErrMissingExternalRef)
	})

	s.Run("error: external reference is not an appointment id", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("approved")
		provider.ExternalReference = "order-42"

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)

		err := s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID})
		s.ErrorIs(err, commands.ErrUnknownAppointmentRef)
	})
}

func (s *WebhookCommandsTestSuite) TestReconcile_Rejected() {
	ctx := context.Background()

	s.Run("success: rejection is recorded with its reason", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("rejected")
		provider.StatusDetail = "cc_rejected_insufficient_amount"

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
		s.payments.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), provider.ID).
			Return(nil, notFoundErr("payment not found"))

		var recorded *payment.Payment
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, p *payment.Payment) error {
				recorded = p
				return nil
			},
		)

		s.Require().NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}))

		s.Require().NotNil(recorded)
		s.Equal(payment.StatusRejected, recorded.Status)
		s.Nil(recorded.PaidAt)
		s.Require().NotNil(recorded.RejectionReason)
		s.Equal("cc_rejected_insufficient_amount", *recorded.RejectionReason)
	})

	s.Run("no-op: rejection already recorded", func() {
		pb := builder.NewPaymentBuilder()
		provider := pb.BuildProviderPayment("rejected")

		existing := pb.BuildDomain()
		existing.Status = payment.StatusRejected
		existing.PaidAt = nil

		s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
		s.payments.EXPECT().FindByExternalID(gomock.Any(), gomock.Any(), provider.ID).
			Return(existing, nil)

		s.NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}))
	})
}

func (s *WebhookCommandsTestSuite) TestReconcile_Ignored() {
	ctx := context.Background()

	s.Run("non-payment notifications are dropped", func() {
		s.NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "merchant_order", PaymentID: "1"}))
	})

	s.Run("in-flight provider statuses are not acted on", func() {
		for _, status := range []string{"pending", "in_process", "refunded", "charged_back"} {
			pb := builder.NewPaymentBuilder()
			provider := pb.BuildProviderPayment(status)

			s.gateway.EXPECT().GetPayment(ctx, provider.ID).Return(provider, nil)
			s.NoError(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: provider.ID}))
		}
	})

	s.Run("provider fetch failure propagates", func() {
		s.gateway.EXPECT().GetPayment(ctx, "77").Return(nil, errors.New("provider down"))
		s.Error(s.sut.Reconcile(ctx, commands.WebhookNotification{Type: "payment", PaymentID: "77"}))
	})
}
