package components

import (
	"clinicbook/internal/infra/paymentgw"
	"clinicbook/internal/usecase/commands"
	"clinicbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseGatewayOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseGatewayOption = fx.Provide(
	fx.Annotate(
		paymentgw.NewClient,
		fx.As(new(commands.PaymentGateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentCommands,
		commands.NewPaymentCommands,
		commands.NewWebhookCommands,
		commands.NewSweepCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
	),
)
