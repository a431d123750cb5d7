package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/cliniccare/clinic-api/config"
	"github.com/cliniccare/clinic-api/internal/handler/appointment"
	settingsHandler "github.com/cliniccare/clinic-api/internal/handler/clinicsettings"
	"github.com/cliniccare/clinic-api/internal/handler/drug"
	"github.com/cliniccare/clinic-api/internal/handler/expense"
	"github.com/cliniccare/clinic-api/internal/handler/patient"
	"github.com/cliniccare/clinic-api/internal/handler/report"
	"github.com/cliniccare/clinic-api/internal/handler/treatment"
	"github.com/cliniccare/clinic-api/internal/middleware"
	"github.com/cliniccare/clinic-api/internal/repository/clinicstore"
	"github.com/cliniccare/clinic-api/internal/router"
	appointmentService "github.com/cliniccare/clinic-api/internal/service/appointment"
	settingsService "github.com/cliniccare/clinic-api/internal/service/clinicsettings"
	expenseService "github.com/cliniccare/clinic-api/internal/service/expense"
	"github.com/cliniccare/clinic-api/internal/service/inventory"
	patientService "github.com/cliniccare/clinic-api/internal/service/patient"
	"github.com/cliniccare/clinic-api/internal/service/pricing"
	reportService "github.com/cliniccare/clinic-api/internal/service/report"
	treatmentService "github.com/cliniccare/clinic-api/internal/service/treatment"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/internal/storage/badgerstore"
	"github.com/cliniccare/clinic-api/internal/storage/file"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
	"github.com/cliniccare/clinic-api/pkg/validator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Output: os.Stdout,
	})

	if err := validator.RegisterCustomRules(); err != nil {
		appLogger.Fatal(err, "failed to register validation rules")
	}

	// Initialize storage backend
	var store storage.Store
	var backups settingsHandler.Backuper
	switch cfg.Storage.Backend {
	case "file":
		fileStore, err := file.New(cfg.Storage.DataDir, appLogger)
		if err != nil {
			appLogger.Fatal(err, "failed to open file store")
		}
		store = fileStore
		backups = fileStore
	case "badger":
		badgerStore, err := badgerstore.Open(cfg.Storage.DataDir)
		if err != nil {
			appLogger.Fatal(err, "failed to open badger store")
		}
		store = badgerStore
	default:
		appLogger.Fatal(fmt.Errorf("unknown backend %q", cfg.Storage.Backend), "invalid storage configuration")
	}
	defer store.Close()

	registry := prometheus.NewRegistry()
	appMetrics := metrics.New("clinic")
	if err := appMetrics.Register(registry); err != nil {
		appLogger.Fatal(err, "failed to register metrics")
	}

	// Initialize repositories
	patientRepo := clinicstore.NewPatientRepository(store, appLogger, appMetrics)
	recordRepo := clinicstore.NewTreatmentRecordRepository(store, appLogger, appMetrics)
	drugRepo := clinicstore.NewDrugRepository(store, appLogger, appMetrics)
	purchaseRepo := clinicstore.NewPurchaseRepository(store, appLogger, appMetrics)
	expenseRepo := clinicstore.NewExpenseRepository(store, appLogger, appMetrics)
	appointmentRepo := clinicstore.NewAppointmentRepository(store, appLogger, appMetrics)
	settingsRepo := clinicstore.NewSettingsRepository(store, appLogger, appMetrics)

	// Initialize services
	inventorySvc := inventory.NewService(drugRepo, purchaseRepo, appLogger, appMetrics)
	pricingSvc := pricing.NewService(cfg.Billing.ServiceFee, drugRepo, appMetrics)
	treatmentSvc := treatmentService.NewService(recordRepo, inventorySvc, appLogger)
	patientSvc := patientService.NewService(patientRepo, recordRepo, appLogger)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	expenseSvc := expenseService.NewService(expenseRepo)
	settingsSvc := settingsService.NewService(settingsRepo)
	reportSvc := reportService.NewService(recordRepo, expenseRepo)

	// Setup router
	r := router.NewRouter(
		router.Config{
			RateLimitRPS:  cfg.RateLimit.RPS,
			RateBurst:     cfg.RateLimit.Burst,
			Timeout:       cfg.Server.RequestTimeout,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "clinic",
			Registry:      registry,
		},
		patient.NewHandler(patientSvc, treatmentSvc),
		treatment.NewHandler(treatmentSvc, pricingSvc),
		drug.NewHandler(inventorySvc),
		expense.NewHandler(expenseSvc),
		appointment.NewHandler(appointmentSvc),
		report.NewHandler(reportSvc),
		settingsHandler.NewHandler(settingsSvc, backups),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("server listening", "addr", srv.Addr, "backend", cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(err, "server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.RequestTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error(err, "graceful shutdown failed")
	}
}
