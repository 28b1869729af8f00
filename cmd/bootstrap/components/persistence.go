package components

import (
	"clinicbook/internal/infra/db"
	"clinicbook/internal/infra/readstore"
	"clinicbook/internal/infra/repository"
	"clinicbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	repositoryModule,
	readstoreModule,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(db.NewTxRunner, fx.As(new(commands.TxRunner))),
		repository.NewAppointmentRepository,
		repository.NewPaymentRepository,
		repository.NewNotificationRepository,
		repository.NewAppointmentReads,
		repository.NewDoctorReads,
		repository.NewPatientReads,
		repository.NewSpecialityReads,
		repository.NewScheduleReads,
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewAppointmentReadStore,
		readstore.NewPaymentReadStore,
		readstore.NewScheduleViewStore,
	),
)
