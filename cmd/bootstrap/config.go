package bootstrap

import (
	"clinicbook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ClinicConfig { return cfg.Clinic },
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
		func(cfg config.Config) config.SweeperConfig { return cfg.Sweeper },
	),
)
