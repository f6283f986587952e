package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/handlers"
	custommiddleware "github.com/akaur/Budget-Buddy-Backend/internal/api/middleware"
	"github.com/akaur/Budget-Buddy-Backend/internal/config"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System    *service.SystemService
	Settings  *service.SettingsService
	Account   *service.AccountService
	Expense   *service.ExpenseService
	Period    *service.PeriodService
	Dashboard *service.DashboardService
	Budget    *service.BudgetService
	Recurring *service.RecurringService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(services.Settings)
			r.Get("/", settingsHandler.GetSettings)
			r.Put("/", settingsHandler.UpdateSettings)
		})

		r.Route("/account", func(r chi.Router) {
			accountHandler := handlers.NewAccountHandler(services.Account)
			r.Get("/", accountHandler.Accounts)
			r.Post("/", accountHandler.CreateAccount)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", accountHandler.GetAccount)
				r.Put("/", accountHandler.UpdateAccount)
				r.Delete("/", accountHandler.ArchiveAccount)
			})
		})

		r.Route("/expense", func(r chi.Router) {
			expenseHandler := handlers.NewExpenseHandler(services.Expense)
			r.Get("/", expenseHandler.Expenses)
			r.Post("/", expenseHandler.CreateExpense)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", expenseHandler.GetExpense)
				r.Put("/", expenseHandler.UpdateExpense)
				r.Delete("/", expenseHandler.DeleteExpense)
			})
		})

		periodHandler := handlers.NewPeriodHandler(services.Period)
		r.Route("/period", func(r chi.Router) {
			r.Get("/", periodHandler.ActivePeriod)
			r.Post("/reset", periodHandler.ResetPeriod)
			r.Get("/markers", periodHandler.Markers)
		})

		r.Route("/cycles", func(r chi.Router) {
			r.Get("/", periodHandler.Cycles)
			r.Get("/{key}/expenses", periodHandler.CycleExpenses)
		})

		r.Get("/alerts/statements", periodHandler.StatementAlerts)

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
			r.Get("/", dashboardHandler.Dashboard)
		})

		r.Route("/budget", func(r chi.Router) {
			budgetHandler := handlers.NewBudgetHandler(services.Budget)
			r.Get("/", budgetHandler.Budgets)
			r.Post("/", budgetHandler.CreateBudget)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", budgetHandler.UpdateBudget)
				r.Delete("/", budgetHandler.DeleteBudget)
			})
		})

		r.Route("/recurring", func(r chi.Router) {
			recurringHandler := handlers.NewRecurringHandler(services.Recurring)
			r.Get("/", recurringHandler.Templates)
			r.Post("/", recurringHandler.CreateTemplate)
			r.Post("/process", recurringHandler.ProcessTemplates)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", recurringHandler.GetTemplate)
				r.Put("/", recurringHandler.UpdateTemplate)
				r.Delete("/", recurringHandler.DeleteTemplate)
			})
		})
	})

	return r
}
