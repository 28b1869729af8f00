package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"clinicbook/internal/handler/api"
	"clinicbook/internal/handler/middleware"
	"clinicbook/internal/pkg/config"
	"clinicbook/internal/usecase/commands"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	appointmentHandler *api.AppointmentHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	doctorHandler *api.DoctorHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, appointmentHandler, paymentHandler, webhookHandler, doctorHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	appointmentHandler *api.AppointmentHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	doctorHandler *api.DoctorHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// provider callbacks authenticate by re-fetching the payment, not by JWT
	engine.POST("/webhooks/payments", webhookHandler.ReceivePaymentNotification)

	apiGroup := engine.Group("/api")
	{
		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "/pre-reserve", Handler: appointmentHandler.PreReserve},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.GetUserAppointments},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.GetAppointment},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: appointmentHandler.Cancel},
				{Method: http.MethodPatch, Path: "/:id/complete", Handler: appointmentHandler.Complete,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(commands.RoleStaff)}},
			})
		}

		doctors := apiGroup.Group("/doctors")
		doctors.Use(authMiddleware.RequireAuth())
		{
			addRoutes(doctors, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: doctorHandler.GetAvailability},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/preference", Handler: paymentHandler.CreatePreference},
				{Method: http.MethodGet, Path: "/:appointmentId", Handler: paymentHandler.GetAppointmentPayment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
