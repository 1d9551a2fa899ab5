package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcapi "rentdesk-backoffice/internal/api/grpc"
	httpapi "rentdesk-backoffice/internal/api/http"
	"rentdesk-backoffice/internal/config"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository/postgres"
	"rentdesk-backoffice/internal/scheduler"
	"rentdesk-backoffice/internal/security"
	"rentdesk-backoffice/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentDesk back office...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http_address", cfg.GetHTTPAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	var tokenManager security.TokenManager
	if cfg.Auth.Disabled {
		logger.Warn("Authentication is disabled; do not use this configuration in production")
	} else {
		tokenManager = security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience)
	}

	// Initialize Services
	carSvc := service.NewCarService(store.CarRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	contractSvc := service.NewContractService(store.ContractRepository, store.CarRepository, cfg.Contracts.NumberPrefix)
	drafts := service.NewDraftRegistry(contractSvc, carSvc, time.Duration(cfg.Drafts.IdleTTLMinutes)*time.Minute)

	services := httpapi.Services{
		Cars:          carSvc,
		Customers:     customerSvc,
		ExternalCars:  service.NewExternalCarService(store.ExternalCarRepository),
		Registrations: service.NewVehicleRegistrationService(store.VehicleRegistrationRepository),
		Company:       service.NewCompanyService(store.CompanyRepository),
		Contracts:     contractSvc,
		Images:        service.NewContractImageService(store.ContractImageRepository, store.ContractRepository),
		Planner:       service.NewPlannerService(store.ContractRepository, store.CarRepository, store.CustomerRepository),
		Reports:       service.NewReportService(store.ContractRepository, store.CarRepository, store.CustomerRepository),
		Drafts:        drafts,
	}

	router := httpapi.NewRouter(services, httpapi.RouterOptions{
		Tokens:             tokenManager,
		DefaultPageSize:    cfg.Contracts.DefaultPageSize,
		ReminderWindowDays: cfg.Reminders.ExpiryWindowDays,
		Health:             store,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Draft sweeper
	sweeper := scheduler.NewScheduler()
	if err := sweeper.Register("SweepDrafts", cfg.Scheduler.SweepDrafts, func() {
		if n := drafts.Sweep(time.Now()); n > 0 {
			logger.Info("Discarded idle contract drafts", "count", n, "open", drafts.Len())
		}
	}); err != nil {
		log.Fatalf("Failed to schedule draft sweeper: %v", err)
	}
	sweeper.Start()

	// Set up gRPC health server
	monitor := grpcapi.NewHealthMonitor(store, 10*time.Second)
	go monitor.Run(ctx)

	lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
		log.Fatalf("Failed to listen: %v", err)
	}
	grpcServer := grpcapi.NewServer(monitor, tokenManager)
	go func() {
		logger.Info("gRPC health server listening", "address", cfg.GetGRPCAddress())
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("Failed to serve gRPC", "error", err)
		}
	}()

	// Set up HTTP admin API
	httpServer := &http.Server{
		Addr:              cfg.GetHTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetHTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Graceful shutdown
	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}
	grpcServer.GracefulStop()
	sweeper.Stop()
	logger.Info("Server stopped. Goodbye!")
}
