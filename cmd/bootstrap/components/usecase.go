package components

import (
	"pawbook/internal/usecase/commands"
	"pawbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCustomerCommands,
		commands.NewDogCommands,
		commands.NewVetCommands,
		commands.NewServiceCommands,
		commands.NewBookingCommands,
		commands.NewInvoiceCommands,
		commands.NewExpenseCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewDogQueries,
		queries.NewVetQueries,
		queries.NewServiceQueries,
		queries.NewBookingQueries,
		queries.NewInvoiceQueries,
		queries.NewExpenseQueries,
		queries.NewReportQueries,
		queries.NewUserQueries,
	),
)
