package api

import (
	"errors"
	"net/http"

	"clinicbook/internal/domain/appointment"
	reqdto "clinicbook/internal/handler/dto/request"
	resdto "clinicbook/internal/handler/dto/response"
	"clinicbook/internal/handler/middleware"
	"clinicbook/internal/usecase/commands"
	"clinicbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
}

func NewAppointmentHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
	}
}

// @Summary Pre-reserve appointment slot
// @Description Validate a slot and place a time-limited hold on it
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreReserveRequest true "Slot request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/pre-reserve [post]
func (h *AppointmentHandler) PreReserve(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PreReserveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.appointmentCommands.PreReserve(c.Request.Context(), actor, commands.PreReserveInput{
		PatientID:     actor.ID,
		DoctorID:      req.DoctorID,
		SpecialityID:  req.SpecialityID,
		LocalDateTime: req.ScheduledAt,
		Reason:        req.Reason,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPreReserveResult(result))
}

// @Summary Cancel appointment
// @Description Cancel a held or confirmed appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/cancel [patch]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	if err := h.appointmentCommands.Cancel(c.Request.Context(), actor, id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Complete appointment
// @Description Mark a confirmed appointment as completed after the visit
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/complete [patch]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	if err := h.appointmentCommands.Complete(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get appointment
// @Description Get appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if !actor.IsStaff() && view.PatientID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Appointment belongs to another patient",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Get own appointments
// @Description Get all appointments for the current patient
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) GetUserAppointments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.appointmentQueries.ListByPatient(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AppointmentListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromAppointmentListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *AppointmentHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPatientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
	case errors.Is(err, commands.ErrDoctorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
	case errors.Is(err, commands.ErrSpecialityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Speciality not found"})
	case errors.Is(err, commands.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	case errors.Is(err, commands.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor has no published schedule"})
	case errors.Is(err, commands.ErrInvalidDateTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scheduled_at format, expected YYYY-MM-DDTHH:MM"})
	case errors.Is(err, commands.ErrDoctorUnpriced):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Doctor has no consultation price configured"})
	case errors.Is(err, commands.ErrNotActor):
		c.JSON(http.StatusForbidden, gin.H{"error": "Appointment belongs to another patient"})
	case errors.Is(err, commands.ErrSlotTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slot is already taken"})
	case errors.Is(err, commands.ErrStateConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Appointment state does not allow this operation"})
	case errors.Is(err, commands.ErrRuleViolation):
		c.JSON(http.StatusBadRequest, gin.H{"error": ruleViolationMessage(err)})
	case errors.Is(err, appointment.ErrCancelWindowClosed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cancellation window has closed"})
	case errors.Is(err, appointment.ErrAlreadyCancelled):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment is already cancelled"})
	case errors.Is(err, appointment.ErrNotPending),
		errors.Is(err, appointment.ErrNotConfirmed),
		errors.Is(err, appointment.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Appointment state does not allow this operation"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func ruleViolationMessage(err error) string {
	switch {
	case errors.Is(err, appointment.ErrPastDate):
		return "Requested time is in the past"
	case errors.Is(err, appointment.ErrClosedDay):
		return "Clinic is closed on that day"
	case errors.Is(err, appointment.ErrOutsideClinicHours):
		return "Requested time is outside clinic hours"
	case errors.Is(err, appointment.ErrUnalignedSlot):
		return "Requested time is not aligned to the slot granularity"
	case errors.Is(err, appointment.ErrInsufficientNotice):
		return "Requested time is too soon"
	case errors.Is(err, appointment.ErrOutsideDoctorSchedule):
		return "Doctor has no availability at the requested time"
	default:
		return "Booking rule violation"
	}
}

func (h *AppointmentHandler) respondQueryError(c *gin.Context, err error) {
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
