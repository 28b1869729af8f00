//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"clinicbook/internal/infra/db"
	"clinicbook/internal/infra/redisclient"
	"clinicbook/internal/pkg/clock"
	"clinicbook/internal/pkg/config"
	"clinicbook/internal/usecase/commands"
	commandsmock "clinicbook/tests/mock/commands"
	redismock "clinicbook/tests/mock/redisclient"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SweepCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tx           *commandsmock.MockTxRunner
	appointments *commandsmock.MockAppointmentRepository
	locker       *redismock.MockLeaderLocker
	mockClock    *clock.MockClock
	sut          commands.SweepCommands
}

func (s *SweepCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tx = commandsmock.NewMockTxRunner(s.ctrl)
	s.appointments = commandsmock.NewMockAppointmentRepository(s.ctrl)
	s.locker = redismock.NewMockLeaderLocker(s.ctrl)

	cfg := config.NewTestConfig()
	loc, err := cfg.Clinic.Location()
	s.Require().NoError(err)
	s.mockClock = clock.NewMockClock(time.Date(2026, 9, 14, 9, 0, 0, 0, loc))

	s.sut = commands.NewSweepCommands(
		s.tx,
		s.appointments,
		s.locker,
		clock.NewCivil(s.mockClock, loc),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *SweepCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSweepCommandsSuite(t *testing.T) {
	suite.Run(t, new(SweepCommandsTestSuite))
}

func (s *SweepCommandsTestSuite) holdLock() {
	s.locker.EXPECT().WithLeaderLock(gomock.Any(), "hold-sweep", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()
}

func (s *SweepCommandsTestSuite) TestExpireOverdue() {
	ctx := context.Background()

	s.Run("success: cancels lapsed holds and reports the count", func() {
		s.holdLock()
		expired := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		s.appointments.EXPECT().CancelExpired(gomock.Any(), gomock.Any(), s.mockClock.Now()).
			Return(expired, nil)

		swept, err := s.sut.ExpireOverdue(ctx)
		s.Require().NoError(err)
		s.Equal(3, swept)
	})

	s.Run("success: nothing lapsed", func() {
		s.holdLock()
		s.appointments.EXPECT().CancelExpired(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		swept, err := s.sut.ExpireOverdue(ctx)
		s.Require().NoError(err)
		s.Equal(0, swept)
	})

	s.Run("skip: another replica holds the lock", func() {
		s.locker.EXPECT().WithLeaderLock(gomock.Any(), "hold-sweep", gomock.Any()).
			Return(redisclient.ErrLockNotAcquired)

		swept, err := s.sut.ExpireOverdue(ctx)
		s.Require().NoError(err)
		s.Equal(0, swept)
	})

	s.Run("error: database failure propagates", func() {
		s.holdLock()
		s.appointments.EXPECT().CancelExpired(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		swept, err := s.sut.ExpireOverdue(ctx)
		s.Error(err)
		s.Equal(0, swept)
	})
}
