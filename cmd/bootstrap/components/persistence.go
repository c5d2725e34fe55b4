package components

import (
	"pawbook/internal/infra/db"
	"pawbook/internal/infra/readstore"
	"pawbook/internal/infra/repository"
	"pawbook/internal/usecase/commands"
	"pawbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewDogReadStore,
			fx.As(new(queries.DogReadStore)),
		),
		fx.Annotate(
			readstore.NewVetReadStore,
			fx.As(new(queries.VetReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),
		fx.Annotate(
			readstore.NewExpenseReadStore,
			fx.As(new(queries.ExpenseReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewDogRepository,
			fx.As(new(commands.DogRepository)),
		),
		fx.Annotate(
			repository.NewVetRepository,
			fx.As(new(commands.VetRepository)),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(commands.InvoiceBookingSource)),
		),
		fx.Annotate(
			repository.NewInvoiceRepository,
			fx.As(new(commands.InvoiceRepository)),
		),
		fx.Annotate(
			repository.NewExpenseRepository,
			fx.As(new(commands.ExpenseRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.SignInRecorder)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
