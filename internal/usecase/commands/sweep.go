package commands

import (
	"context"
	"errors"
	"log/slog"

	"clinicbook/internal/infra/db"
	"clinicbook/internal/infra/redisclient"
	"clinicbook/internal/pkg/clock"
	"clinicbook/internal/pkg/errs"
)

const sweepLockName = "hold-sweep"

type SweepCommands interface {
	// ExpireOverdue cancels every hold that lapsed before now and returns
	// how many were cancelled. When another replica holds the leader lock
	// the sweep is skipped and reports zero.
	ExpireOverdue(ctx context.Context) (int, error)
}

type sweepCommandsImpl struct {
	tx           TxRunner
	appointments AppointmentRepository
	locker       redisclient.LeaderLocker
	civil        *clock.Civil
	logger       *slog.Logger
}

func NewSweepCommands(
	tx TxRunner,
	appointments AppointmentRepository,
	locker redisclient.LeaderLocker,
	civil *clock.Civil,
	logger *slog.Logger,
) SweepCommands {
	return &sweepCommandsImpl{
		tx:           tx,
		appointments: appointments,
		locker:       locker,
		civil:        civil,
		logger:       logger,
	}
}

func (c *sweepCommandsImpl) ExpireOverdue(ctx context.Context) (int, error) {
	var swept int

	err := c.locker.WithLeaderLock(ctx, sweepLockName, func(ctx context.Context) error {
		now := c.civil.Now()

		return c.tx.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			ids, err := c.appointments.CancelExpired(ctx, tx, now)
			if err != nil {
				return errs.Wrap(err, "failed to cancel expired holds")
			}

			swept = len(ids)
			if swept > 0 {
				c.logger.Info("expired holds cancelled", "count", swept)
			}
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, redisclient.ErrLockNotAcquired) {
			return 0, nil
		}
		return 0, err
	}

	return swept, nil
}
