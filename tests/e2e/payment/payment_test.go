//go:build e2e

package payment_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	reqdto "clinicbook/internal/handler/dto/request"
	resdto "clinicbook/internal/handler/dto/response"
	"clinicbook/internal/usecase/commands"
	"clinicbook/tests/common/authtest"
	"clinicbook/tests/common/dbtest"
	"clinicbook/tests/common/httptest"
	"clinicbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	preReserveURL = "/api/appointments/pre-reserve"
	preferenceURL = "/api/payments/preference"
	webhookURL    = "/webhooks/payments"

	testPriceCents = int64(500000)
)

type PaymentSuite struct {
	e2e.SharedSuite
}

func (s *PaymentSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPaymentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PaymentSuite))
}

func (s *PaymentSuite) patientToken(t *testing.T, patientID uuid.UUID) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, patientID, commands.RolePatient)
}

// holdAppointment seeds a doctor and patient, places a hold through the API,
// and returns the ids plus the patient's token.
func (s *PaymentSuite) holdAppointment(t *testing.T) (appointmentID, patientID uuid.UUID, token string) {
	loc, err := s.Config.Clinic.Location()
	require.NoError(t, err)

	specialityID := dbtest.CreateTestSpeciality(t, s.DB, "Cardiology")
	price := testPriceCents
	doctorID := dbtest.CreateTestDoctor(t, s.DB, "Dr. Ana Suarez", "ana@clinic.test", &specialityID, &price)
	dbtest.CreateTestFullWeekSchedule(t, s.DB, doctorID)
	patientID = dbtest.CreateTestPatient(t, s.DB, "Marta Lopez", "marta@example.com")
	token = s.patientToken(t, patientID)

	day := time.Now().In(loc).AddDate(0, 0, 3)
	for day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	slot := time.Date(day.Year(), day.Month(), day.Day(), 10, 30, 0, 0, loc)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, preReserveURL,
		reqdto.PreReserveRequest{DoctorID: doctorID, ScheduledAt: slot.Format("2006-01-02T15:04")}, token)
	var hold resdto.HoldResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &hold)

	return hold.AppointmentID, patientID, token
}

func (s *PaymentSuite) postWebhook(t *testing.T, externalID string) {
	body := map[string]any{
		"type": "payment",
		"data": map[string]any{"id": externalID},
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL, body, "")

	var ack map[string]bool
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
	require.True(t, ack["received"])
}

// =============================================================================
// TestCreatePreference - Checkout preference API tests
// =============================================================================

func (s *PaymentSuite) TestCreatePreference() {
	s.Run("Normal case: held appointment gets a checkout preference", func() {
		t := s.T()

		appointmentID, _, token := s.holdAppointment(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, preferenceURL,
			reqdto.CreatePreferenceRequest{AppointmentID: appointmentID}, token)

		var pref resdto.PreferenceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &pref)
		require.NotEmpty(t, pref.PreferenceID)
		require.True(t, strings.HasPrefix(pref.InitPoint, s.Provider.URL()), "init_point should come from the provider")
		require.True(t, pref.ExpiresAt.After(time.Now()), "checkout must expire with the hold")
	})

	s.Run("Error case: hold about to lapse is not payable", func() {
		t := s.T()

		appointmentID, _, token := s.holdAppointment(t)

		shortExpiry := time.Now().Add(30 * time.Second)
		_, err := s.DB.Exec(context.Background(),
			"UPDATE appointments SET expires_at = $1 WHERE id = $2", shortExpiry, appointmentID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, preferenceURL,
			reqdto.CreatePreferenceRequest{AppointmentID: appointmentID}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Hold is about to expire")
	})

	s.Run("Error case: another patient cannot pay for the hold", func() {
		t := s.T()

		appointmentID, _, _ := s.holdAppointment(t)
		intruder := dbtest.CreateTestPatient(t, s.DB, "Pedro Gomez", "pedro@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, preferenceURL,
			reqdto.CreatePreferenceRequest{AppointmentID: appointmentID}, s.patientToken(t, intruder))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Appointment belongs to another patient")
	})

	s.Run("Error case: unknown appointment", func() {
		t := s.T()

		patientID := dbtest.CreateTestPatient(t, s.DB, "Marta Lopez", "marta@example.com")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, preferenceURL,
			reqdto.CreatePreferenceRequest{AppointmentID: uuid.New()}, s.patientToken(t, patientID))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Appointment not found")
	})
}

// =============================================================================
// TestWebhookReconciliation - Provider notification tests
// =============================================================================

func (s *PaymentSuite) TestWebhookReconciliation() {
	s.Run("Normal case: approved payment confirms the hold", func() {
		t := s.T()

		appointmentID, _, token := s.holdAppointment(t)

		paidAt := time.Now().Add(-time.Minute)
		s.Provider.SetPayment("70010001", "approved", "accredited", appointmentID.String(), 5000, &paidAt)
		s.postWebhook(t, "70010001")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/appointments/"+appointmentID.String(), nil, token)
		var detail resdto.AppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, "confirmed", detail.Status)
		require.Nil(t, detail.ExpiresAt, "confirmation clears the hold expiry")
		require.NotNil(t, detail.PaymentReference)
		require.Equal(t, "70010001", *detail.PaymentReference)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/payments/"+appointmentID.String(), nil, token)
		var payment resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &payment)
		require.Equal(t, "approved", payment.Status)
		require.Equal(t, testPriceCents, payment.AmountCents)
		require.NotNil(t, payment.PaidAt)
	})

	s.Run("Normal case: duplicate delivery is idempotent", func() {
		t := s.T()

		appointmentID, _, _ := s.holdAppointment(t)

		paidAt := time.Now().Add(-time.Minute)
		s.Provider.SetPayment("70010002", "approved", "accredited", appointmentID.String(), 5000, &paidAt)
		s.postWebhook(t, "70010002")
		s.postWebhook(t, "70010002")

		var paymentCount int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM payments WHERE external_id = $1", "70010002").Scan(&paymentCount)
		require.NoError(t, err)
		require.Equal(t, 1, paymentCount)

		var confirmCount int
		err = s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM notification_jobs WHERE topic = 'appointment.confirmed'").Scan(&confirmCount)
		require.NoError(t, err)
		require.Equal(t, 1, confirmCount, "only the first delivery notifies")
	})

	s.Run("Normal case: rejected payment keeps the hold pending", func() {
		t := s.T()

		appointmentID, _, token := s.holdAppointment(t)

		s.Provider.SetPayment("70010003", "rejected", "cc_rejected_insufficient_amount", appointmentID.String(), 5000, nil)
		s.postWebhook(t, "70010003")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/appointments/"+appointmentID.String(), nil, token)
		var detail resdto.AppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, "pending", detail.Status, "a rejected payment never confirms")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/payments/"+appointmentID.String(), nil, token)
		var payment resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &payment)
		require.Equal(t, "rejected", payment.Status)
		require.NotNil(t, payment.RejectionReason)
		require.Equal(t, "cc_rejected_insufficient_amount", *payment.RejectionReason)
		require.Nil(t, payment.PaidAt)
	})

	s.Run("Edge case: approved payment for a swept hold is recorded as ignored", func() {
		t := s.T()

		appointmentID, _, token := s.holdAppointment(t)

		// the sweeper won the race before the webhook arrived
		_, err := s.DB.Exec(context.Background(),
			"UPDATE appointments SET status = 'cancelled', expires_at = NULL, cancelled_at = now() WHERE id = $1",
			appointmentID)
		require.NoError(t, err)

		paidAt := time.Now().Add(-time.Minute)
		s.Provider.SetPayment("70010004", "approved", "accredited", appointmentID.String(), 5000, &paidAt)
		s.postWebhook(t, "70010004")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/appointments/"+appointmentID.String(), nil, token)
		var detail resdto.AppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, "cancelled", detail.Status, "a cancelled appointment is never revived")

		var paymentStatus string
		err = s.DB.QueryRow(context.Background(),
			"SELECT status FROM payments WHERE external_id = $1", "70010004").Scan(&paymentStatus)
		require.NoError(t, err)
		require.Equal(t, "ignored", paymentStatus)
	})

	s.Run("Edge case: notification for an unknown payment is still acknowledged", func() {
		t := s.T()

		// no record programmed at the provider; reconciliation fails internally
		body := map[string]any{
			"type": "payment",
			"data": map[string]any{"id": "99999999"},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL, body, "")

		var ack map[string]bool
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.True(t, ack["received"])
	})

	s.Run("Normal case: unusable envelope is acknowledged and dropped", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, webhookURL,
			map[string]any{"type": "payment"}, "")

		var ack map[string]bool
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.True(t, ack["received"])
	})
}
