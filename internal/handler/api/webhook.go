package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	reqdto "clinicbook/internal/handler/dto/request"
	"clinicbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhookCommands commands.WebhookCommands
	logger          *slog.Logger
}

func NewWebhookHandler(webhookCommands commands.WebhookCommands, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookCommands: webhookCommands,
		logger:          logger,
	}
}

// @Summary Payment webhook
// @Description Receive asynchronous payment notifications from the provider
// @Tags webhooks
// @Accept json
// @Produce json
// @Param notification body reqdto.WebhookNotificationRequest true "Provider notification"
// @Success 200 {object} map[string]bool
// @Router /webhooks/payments [post]
func (h *WebhookHandler) ReceivePaymentNotification(c *gin.Context) {
	// the full raw body is read first so a later provider signature check
	// can run over the exact bytes received
	body, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("unreadable payment notification ignored", "error", err.Error())
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	// an envelope we cannot use (undecodable, or missing type/id) is a no-op,
	// not an error: a non-200 would only make the provider redeliver it
	var req reqdto.WebhookNotificationRequest
	if unmarshalErr := json.Unmarshal(body, &req); unmarshalErr != nil || req.Type == "" || req.Data.ID == "" {
		h.logger.Warn("unusable payment notification ignored", "body_size", len(body))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	err = h.webhookCommands.Reconcile(c.Request.Context(), commands.WebhookNotification{
		Type:      req.Type,
		PaymentID: req.Data.ID,
	})
	if err != nil {
		// acknowledge anyway: answering non-200 makes the provider hammer a
		// failure we have to resolve internally
		h.logger.Error("payment webhook reconciliation failed",
			"error", err.Error(),
			"external_payment_id", req.Data.ID,
		)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
