package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawbook/internal/handler/api"
	"pawbook/internal/handler/middleware"
	"pawbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Customer *api.CustomerHandler
	Dog      *api.DogHandler
	Vet      *api.VetHandler
	Service  *api.ServiceHandler
	Booking  *api.BookingHandler
	Invoice  *api.InvoiceHandler
	Expense  *api.ExpenseHandler
	User     *api.UserHandler
	Report   *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Customer.CreateCustomer},
				{Method: http.MethodGet, Path: "", Handler: h.Customer.ListCustomers},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.GetCustomer},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Customer.UpdateCustomer},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.DeleteCustomer},
			})
		}

		dogs := apiGroup.Group("/dogs")
		dogs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dogs, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Dog.CreateDog},
				{Method: http.MethodGet, Path: "", Handler: h.Dog.ListDogs},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Dog.GetDog},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Dog.UpdateDog},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Dog.DeleteDog},
			})
		}

		vets := apiGroup.Group("/vets")
		vets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(vets, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Vet.CreateVet},
				{Method: http.MethodGet, Path: "", Handler: h.Vet.ListVets},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Vet.GetVet},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Vet.UpdateVet},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Vet.DeleteVet},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Service.CreateService},
				{Method: http.MethodGet, Path: "", Handler: h.Service.ListServices},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Service.GetService},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Service.UpdateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Service.DeleteService},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.UpdateBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.DeleteBooking},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Invoice.GenerateInvoice},
				{Method: http.MethodGet, Path: "", Handler: h.Invoice.ListInvoices},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Invoice.GetInvoice},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Invoice.UpdateInvoice},
				{Method: http.MethodPost, Path: "/:id/regenerate", Handler: h.Invoice.RegenerateInvoice},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Invoice.DeleteInvoice},
				{Method: http.MethodGet, Path: "/:id/download", Handler: h.Invoice.DownloadInvoice},
				{Method: http.MethodPost, Path: "/:id/email", Handler: h.Invoice.EmailInvoice},
			})
		}

		expenses := apiGroup.Group("/expenses")
		expenses.Use(authMiddleware.RequireAuth())
		{
			addRoutes(expenses, []route{
				{Method: http.MethodGet, Path: "/categories", Handler: h.Expense.ListCategories},
				{Method: http.MethodPost, Path: "/categories", Handler: h.Expense.CreateCategory},
				{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.Expense.DeleteCategory},
				{Method: http.MethodPost, Path: "", Handler: h.Expense.CreateExpense},
				{Method: http.MethodGet, Path: "", Handler: h.Expense.ListExpenses},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Expense.GetExpense},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Expense.UpdateExpense},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Expense.DeleteExpense},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/income-statement", Handler: h.Report.IncomeStatement},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: h.User.CreateUser},
				{Method: http.MethodGet, Path: "", Handler: h.User.ListUsers},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.GetUser},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.User.UpdateUser},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.DeleteUser},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
