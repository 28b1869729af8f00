package components

import (
	"clinicbook/internal/handler"
	"clinicbook/internal/handler/api"
	"clinicbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewPaymentHandler,
		api.NewWebhookHandler,
		api.NewDoctorHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
