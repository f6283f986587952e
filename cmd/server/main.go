package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/api"
	"github.com/akaur/Budget-Buddy-Backend/internal/config"
	"github.com/akaur/Budget-Buddy-Backend/internal/database"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
	"github.com/akaur/Budget-Buddy-Backend/internal/scheduler"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	settingsRepo := repository.NewSettingsRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	markerRepo := repository.NewMarkerRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	recurringRepo := repository.NewRecurringRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	settingsService := service.NewSettingsService(settingsRepo, accountRepo)
	accountService := service.NewAccountService(accountRepo)
	periodService := service.NewPeriodService(
		settingsService,
		markerRepo,
		expenseRepo,
		accountRepo,
	)
	expenseService := service.NewExpenseService(
		expenseRepo,
		accountRepo,
		periodService,
	)
	budgetService := service.NewBudgetService(budgetRepo, accountRepo)
	dashboardService := service.NewDashboardService(
		periodService,
		expenseRepo,
		budgetRepo,
	)
	recurringService := service.NewRecurringService(
		recurringRepo,
		expenseRepo,
		accountRepo,
	)

	// Start the recurring generation schedule
	sched, err := scheduler.New(recurringService, cfg.Scheduler.RecurringSpec)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Settings:  settingsService,
		Account:   accountService,
		Expense:   expenseService,
		Period:    periodService,
		Dashboard: dashboardService,
		Budget:    budgetService,
		Recurring: recurringService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
