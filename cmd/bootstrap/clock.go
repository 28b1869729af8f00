package bootstrap

import (
	"fmt"

	"clinicbook/internal/pkg/clock"
	"clinicbook/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
		NewCivil,
	),
)

func NewCivil(c clock.Clock, cfg config.Config) (*clock.Civil, error) {
	loc, err := cfg.Clinic.Location()
	if err != nil {
		return nil, fmt.Errorf("load clinic timezone %q: %w", cfg.Clinic.TimeZone, err)
	}
	return clock.NewCivil(c, loc), nil
}
