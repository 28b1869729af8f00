//go:build unit

package api_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"clinicbook/internal/handler/api"
	"clinicbook/internal/usecase/commands"
	"clinicbook/tests/common/httptest"
	commandsmock "clinicbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = api.NewWebhookHandler(s.mockCommands, logger)

	// provider callbacks carry no JWT
	s.router.POST("/webhooks/payments", s.handler.ReceivePaymentNotification)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestReceivePaymentNotification() {
	url := "/webhooks/payments"

	envelope := map[string]any{
		"type": "payment",
		"data": map[string]any{"id": "100200300"},
	}

	s.Run("success: returns 200 OK and acknowledges", func() {
		s.mockCommands.EXPECT().
			Reconcile(gomock.Any(), commands.WebhookNotification{Type: "payment", PaymentID: "100200300"}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, envelope, "")

		var response map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response["received"])
	})

	s.Run("success: still returns 200 OK when reconciliation fails", func() {
		s.mockCommands.EXPECT().
			Reconcile(gomock.Any(), commands.WebhookNotification{Type: "payment", PaymentID: "100200300"}).
			Return(errors.New("provider unreachable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, envelope, "")

		var response map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response["received"])
	})

	s.Run("success: unusable envelopes are acknowledged and dropped", func() {
		// no Reconcile expectation: nothing may reach the usecase, and a
		// non-200 would only make the provider redeliver the same event
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing type", body: map[string]any{"data": map[string]any{"id": "100200300"}}},
			{name: "missing data", body: map[string]any{"type": "payment"}},
			{name: "missing data.id", body: map[string]any{"type": "payment", "data": map[string]any{}}},
			{name: "numeric data.id", body: map[string]any{"type": "payment", "data": map[string]any{"id": 123}}},
			{name: "merchant_order without data", body: map[string]any{"type": "merchant_order", "resource": "/merchant_orders/123"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")

				var response map[string]bool
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
				s.True(response["received"])
			})
		}
	})

	s.Run("success: forwards non-payment notifications untouched", func() {
		s.mockCommands.EXPECT().
			Reconcile(gomock.Any(), commands.WebhookNotification{Type: "merchant_order", PaymentID: "555"}).
			Return(nil).Times(1)

		body := map[string]any{
			"type": "merchant_order",
			"data": map[string]any{"id": "555"},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
