package components

import (
	"pawbook/internal/handler"
	"pawbook/internal/handler/api"
	"pawbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCustomerHandler,
		api.NewDogHandler,
		api.NewVetHandler,
		api.NewServiceHandler,
		api.NewBookingHandler,
		api.NewInvoiceHandler,
		api.NewExpenseHandler,
		api.NewUserHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	customer *api.CustomerHandler,
	dog *api.DogHandler,
	vet *api.VetHandler,
	service *api.ServiceHandler,
	booking *api.BookingHandler,
	invoice *api.InvoiceHandler,
	expense *api.ExpenseHandler,
	user *api.UserHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Customer: customer,
		Dog:      dog,
		Vet:      vet,
		Service:  service,
		Booking:  booking,
		Invoice:  invoice,
		Expense:  expense,
		User:     user,
		Report:   report,
	}
}
