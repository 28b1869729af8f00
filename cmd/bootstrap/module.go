package bootstrap

import (
	"clinicbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	ClockModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
