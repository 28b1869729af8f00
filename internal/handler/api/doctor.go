package api

import (
	"net/http"

	resdto "clinicbook/internal/handler/dto/response"
	"clinicbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DoctorHandler struct {
	appointmentQueries queries.AppointmentQueries
}

func NewDoctorHandler(appointmentQueries queries.AppointmentQueries) *DoctorHandler {
	return &DoctorHandler{
		appointmentQueries: appointmentQueries,
	}
}

// @Summary Get doctor availability
// @Description Get a doctor's weekly attention windows
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Doctor ID"
// @Success 200 {array} resdto.AvailabilityWindowResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /doctors/{id}/availability [get]
func (h *DoctorHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid doctor ID format",
		})
		return
	}

	views, err := h.appointmentQueries.DoctorAvailability(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor has no published schedule"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityWindows(views))
}
