package api

import (
	"errors"
	"net/http"

	reqdto "clinicbook/internal/handler/dto/request"
	resdto "clinicbook/internal/handler/dto/response"
	"clinicbook/internal/handler/middleware"
	"clinicbook/internal/usecase/commands"
	"clinicbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands    commands.PaymentCommands
	appointmentQueries queries.AppointmentQueries
}

func NewPaymentHandler(
	paymentCommands commands.PaymentCommands,
	appointmentQueries queries.AppointmentQueries,
) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands:    paymentCommands,
		appointmentQueries: appointmentQueries,
	}
}

// @Summary Create payment preference
// @Description Create a checkout preference for a held appointment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePreferenceRequest true "Preference request"
// @Success 201 {object} resdto.PreferenceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/preference [post]
func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePreferenceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.paymentCommands.CreatePreference(c.Request.Context(), actor, req.AppointmentID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case errors.Is(err, commands.ErrNotActor):
			c.JSON(http.StatusForbidden, gin.H{"error": "Appointment belongs to another patient"})
		case errors.Is(err, commands.ErrStateConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Appointment is not awaiting payment"})
		case errors.Is(err, commands.ErrHoldTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Hold is about to expire, book the slot again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPreferenceResult(result))
}

// @Summary Get appointment payment
// @Description Get the latest payment recorded for an appointment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param appointmentId path string true "Appointment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{appointmentId} [get]
func (h *PaymentHandler) GetAppointmentPayment(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("appointmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.appointmentQueries.PaymentByAppointment(c.Request.Context(), appointmentID)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}
