package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dentalflow/backend/internal/adapters/snapshot"
	"github.com/dentalflow/backend/internal/adapters/store"
	"github.com/dentalflow/backend/internal/api/handlers"
	"github.com/dentalflow/backend/internal/api/routes"
	"github.com/dentalflow/backend/internal/application/services"
	"github.com/dentalflow/backend/internal/domain/providers"
	"github.com/dentalflow/backend/internal/infrastructure/observability"
	"github.com/dentalflow/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize the snapshot provider
	var provider providers.SnapshotProvider
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		redisProvider, err := snapshot.NewRedis(&cfg.Redis, cfg.Storage.KeyPrefix)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer redisProvider.Close()
		provider = redisProvider
		logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis snapshot provider initialized")
	default:
		provider = snapshot.NewFilesystem(cfg.Storage.Path)
		logger.Info().Str("path", cfg.Storage.Path).Msg("filesystem snapshot provider initialized")
	}

	// Load the clinic state
	clinicStore, err := store.New(ctx, provider, *logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load clinic state")
	}

	// Initialize services
	patientService := services.NewPatientService(clinicStore.Patients())
	ledgerService := services.NewLedgerService(
		clinicStore.Patients(),
		clinicStore.Treatments(),
		clinicStore.Payments(),
		clinicStore.Appointments(),
	)
	visitService := services.NewVisitService(clinicStore.Patients(), clinicStore.Visits())
	appointmentService := services.NewAppointmentService(clinicStore.Appointments(), clinicStore.Patients())
	userService := services.NewUserService(clinicStore.Users(), clinicStore.Reminders())
	catalogService := services.NewCatalogService(clinicStore.Catalog(), provider)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	patientHandler := handlers.NewPatientHandler(patientService, ledgerService)
	treatmentHandler := handlers.NewTreatmentHandler(ledgerService)
	paymentHandler := handlers.NewPaymentHandler(ledgerService, metrics)
	visitHandler := handlers.NewVisitHandler(visitService, metrics)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	dashboardHandler := handlers.NewDashboardHandler(ledgerService)
	settingsHandler := handlers.NewSettingsHandler(catalogService)

	// Set up router
	router := routes.NewRouter(
		authHandler,
		userHandler,
		patientHandler,
		treatmentHandler,
		paymentHandler,
		visitHandler,
		appointmentHandler,
		dashboardHandler,
		settingsHandler,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
