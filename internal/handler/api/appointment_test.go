//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"clinicbook/internal/domain/appointment"
	"clinicbook/internal/handler/api"
	resdto "clinicbook/internal/handler/dto/response"
	"clinicbook/internal/infra"
	"clinicbook/internal/pkg/errs"
	"clinicbook/internal/usecase/commands"
	"clinicbook/internal/usecase/queries"
	"clinicbook/tests/common/builder"
	"clinicbook/tests/common/httptest"
	"clinicbook/tests/common/testutil"
	commandsmock "clinicbook/tests/mock/commands"
	queriesmock "clinicbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	patientID    uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	s.patientID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.patientID)
		c.Set("user_role", commands.RolePatient)
		c.Next()
	}

	// Setup routes
	s.router.POST("/appointments/pre-reserve", authMiddleware, s.handler.PreReserve)
	s.router.GET("/appointments", authMiddleware, s.handler.GetUserAppointments)
	s.router.GET("/appointments/:id", authMiddleware, s.handler.GetAppointment)
	s.router.PATCH("/appointments/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.PATCH("/appointments/:id/complete", authMiddleware, s.handler.Complete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) actor() commands.Actor {
	return commands.Actor{ID: s.patientID, Role: commands.RolePatient}
}

func notFoundRepoErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

// ================================================================================
// TestPreReserve
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestPreReserve() {
	url := "/appointments/pre-reserve"

	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildPreReserveRequestDTO("2026-09-15T10:30")
	expectedResult := &commands.PreReserveResult{
		AppointmentID: b.ID,
		ScheduledAt:   b.ScheduledAt,
		ExpiresAt:     b.ScheduledAt.Add(-time.Hour),
		PriceCents:    b.PriceCents,
	}

	s.Run("success: returns 201 Created with hold details", func() {
		expectedInput := commands.PreReserveInput{
			PatientID:     s.patientID,
			DoctorID:      reqBody.DoctorID,
			SpecialityID:  reqBody.SpecialityID,
			LocalDateTime: reqBody.ScheduledAt,
		}
		s.mockCommands.EXPECT().PreReserve(gomock.Any(), s.actor(), expectedInput).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expectedResult.AppointmentID, response.AppointmentID)
		s.Equal(expectedResult.PriceCents, response.PriceCents)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: doctor_id (required)", mutate: testutil.Field("doctor_id", nil)},
			{name: "missing field: scheduled_at (required)", mutate: testutil.Field("scheduled_at", nil)},
			{name: "empty scheduled_at", mutate: testutil.Field("scheduled_at", "")},
			{name: "doctor_id is not a UUID", mutate: testutil.Field("doctor_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "patient not found",
				commandsError:  errs.Mark(errors.New("no rows"), commands.ErrPatientNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Patient not found",
			},
			{
				name:           "doctor not found",
				commandsError:  errs.Mark(errors.New("no rows"), commands.ErrDoctorNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Doctor not found",
			},
			{
				name:           "speciality not found",
				commandsError:  errs.Mark(errors.New("no rows"), commands.ErrSpecialityNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Speciality not found",
			},
			{
				name:           "malformed scheduled_at",
				commandsError:  errs.Mark(errors.New("cannot parse"), commands.ErrInvalidDateTime),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid scheduled_at format",
			},
			{
				name:           "doctor has no price",
				commandsError:  commands.ErrDoctorUnpriced,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Doctor has no consultation price configured",
			},
			{
				name:           "doctor has no schedule",
				commandsError:  errs.Mark(errors.New("no rows"), commands.ErrScheduleNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Doctor has no published schedule",
			},
			{
				name:           "slot already taken",
				commandsError:  commands.ErrSlotTaken,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Slot is already taken",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PreReserve(gomock.Any(), s.actor(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 with specific message per booking rule", func() {
		testCases := []struct {
			name        string
			ruleError   error
			expectedMsg string
		}{
			{name: "past date", ruleError: appointment.ErrPastDate, expectedMsg: "Requested time is in the past"},
			{name: "closed day", ruleError: appointment.ErrClosedDay, expectedMsg: "Clinic is closed on that day"},
			{name: "outside clinic hours", ruleError: appointment.ErrOutsideClinicHours, expectedMsg: "Requested time is outside clinic hours"},
			{name: "unaligned slot", ruleError: appointment.ErrUnalignedSlot, expectedMsg: "Requested time is not aligned to the slot granularity"},
			{name: "insufficient notice", ruleError: appointment.ErrInsufficientNotice, expectedMsg: "Requested time is too soon"},
			{name: "outside doctor schedule", ruleError: appointment.ErrOutsideDoctorSchedule, expectedMsg: "Doctor has no availability at the requested time"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PreReserve(gomock.Any(), s.actor(), gomock.Any()).
					Return(nil, errs.Mark(tc.ruleError, commands.ErrRuleViolation)).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCancel() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String() + "/cancel"

	s.Run("success: returns the cancelled appointment", func() {
		view := builder.NewAppointmentBuilder().
			With(func(b *builder.AppointmentBuilder) {
				b.ID = appointmentID
				b.PatientID = s.patientID
			}).
			WithStatus(appointment.StatusCancelled).
			BuildView()

		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor(), appointmentID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), appointmentID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(appointmentID, response.ID)
		s.Equal(string(appointment.StatusCancelled), response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/appointments/invalid-uuid/cancel"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "appointment not found",
				commandsError:  errs.Mark(errors.New("no rows"), commands.ErrAppointmentNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Appointment not found",
			},
			{
				name:           "belongs to another patient",
				commandsError:  commands.ErrNotActor,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Appointment belongs to another patient",
			},
			{
				name:           "cancellation window closed",
				commandsError:  appointment.ErrCancelWindowClosed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cancellation window has closed",
			},
			{
				name:           "already cancelled",
				commandsError:  appointment.ErrAlreadyCancelled,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Appointment is already cancelled",
			},
			{
				name:           "concurrent state change",
				commandsError:  errs.Mark(errors.New("appointment changed concurrently"), commands.ErrStateConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Appointment state does not allow this operation",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor(), appointmentID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestComplete
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestComplete() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String() + "/complete"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), appointmentID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/appointments/invalid-uuid/complete"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "appointment not found",
				commandsError:  errs.Mark(errors.New("no rows"), commands.ErrAppointmentNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Appointment not found",
			},
			{
				name:           "appointment not confirmed",
				commandsError:  appointment.ErrNotConfirmed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Appointment state does not allow this operation",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Complete(gomock.Any(), appointmentID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String()

	s.Run("success: returns 200 OK with own appointment", func() {
		view := builder.NewAppointmentBuilder().
			With(func(b *builder.AppointmentBuilder) {
				b.ID = appointmentID
				b.PatientID = s.patientID
			}).
			BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), appointmentID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(appointmentID, response.ID)
		s.Equal(view.DoctorName, response.DoctorName)
		s.Equal(view.PriceCents, response.PriceCents)
		s.Equal(string(view.Status), response.Status)
	})

	s.Run("error: 403 Forbidden for another patient's appointment", func() {
		view := builder.NewAppointmentBuilder().
			With(func(b *builder.AppointmentBuilder) { b.ID = appointmentID }).
			BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), appointmentID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Appointment belongs to another patient")
	})

	s.Run("success: staff can read any appointment", func() {
		staffRouter := gin.New()
		staffAuthMiddleware := func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			c.Set("user_role", commands.RoleStaff)
			c.Next()
		}
		staffRouter.GET("/appointments/:id", staffAuthMiddleware, s.handler.GetAppointment)

		view := builder.NewAppointmentBuilder().
			With(func(b *builder.AppointmentBuilder) { b.ID = appointmentID }).
			BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), appointmentID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), staffRouter, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/appointments/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID format")
	})

	s.Run("error: 404 Not Found for missing appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), appointmentID).
			Return(nil, notFoundRepoErr("appointment not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), appointmentID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetUserAppointments
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGetUserAppointments() {
	url := "/appointments"

	s.Run("success: returns 200 OK with own appointments", func() {
		confirmed := builder.NewAppointmentBuilder().WithStatus(appointment.StatusConfirmed)
		pending := builder.NewAppointmentBuilder()
		items := []*queries.AppointmentListItem{confirmed.BuildListItem(), pending.BuildListItem()}
		s.mockQueries.EXPECT().ListByPatient(gomock.Any(), s.patientID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(confirmed.ID, response[0].ID)
		s.Equal(string(appointment.StatusConfirmed), response[0].Status)
	})

	s.Run("success: empty list when patient has no appointments", func() {
		s.mockQueries.EXPECT().ListByPatient(gomock.Any(), s.patientID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 0)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByPatient(gomock.Any(), s.patientID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
