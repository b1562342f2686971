package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/persistence"
	disputeUseCase "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/dispute"
	payoutUseCase "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/payout"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/reconcile"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/review"
	transactionUseCase "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/usecase/transaction"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/access"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/payout"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/repository/memory"
	timeProvider "github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// storage is the persistence backend selected by storage.driver
type storage struct {
	uow     persistence.UnitOfWork
	leases  persistence.ReleaseLeaseRepository
	catalog external.ItemCatalog
	checks  map[string]handler.HealthCheck
	close   func() error
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Logger.Format == "json")
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ids := idgen.NewUUIDGenerator("")

	registry := prometheus.NewRegistry()
	var recorder coreport.MetricsRecorder = metrics.NoopRecorder{}
	var promRecorder *metrics.PrometheusRecorder
	if cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		promRecorder = metrics.NewPrometheusRecorder(registry)
		recorder = promRecorder
	}

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, appLogger, tp, promRecorder)
	if err != nil {
		appLogger.Error("Failed to initialize storage", map[string]any{
			"driver": cfg.Storage.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = store.close() }()

	payouts, breaker, err := buildPayoutService(cfg.Payout, appLogger, tp, promRecorder)
	if err != nil {
		appLogger.Error("Failed to initialize payout provider", map[string]any{
			"provider": cfg.Payout.Provider,
			"error":    err.Error(),
		})
		os.Exit(1)
	}
	store.checks["payouts"] = func(context.Context) error {
		if breaker.State() == payout.StateOpen {
			return payout.ErrCircuitOpen
		}
		return nil
	}

	sinks := []notifier.Sink{notifier.NewLogSink(appLogger)}
	if cfg.Notifier.WebhookURL != "" {
		sinks = append(sinks, notifier.NewWebhookSink(cfg.Notifier.WebhookURL, cfg.Notifier.WebhookSecret, cfg.Notifier.WebhookTimeout))
	}
	partyNotifier := notifier.NewAsyncNotifier(appLogger, cfg.Notifier.QueueSize, cfg.Notifier.SendTimeout, sinks...)

	admins := access.NewStaticAccessControl(cfg.Escrow.AdminUserIDs)
	if admins.Count() == 0 {
		appLogger.Warn("No admin users configured, disputes cannot be resolved", nil)
	}

	txManager := transactionUseCase.NewTransactionManager(appLogger, cfg.Escrow.QueueSize)

	settler := payoutUseCase.NewSettler(store.uow, store.leases, payouts, ids, tp, appLogger, recorder, payoutUseCase.Config{
		LeaseTimeout:   cfg.Escrow.ReleaseLeaseTimeout,
		MaxAttempts:    cfg.Payout.MaxAttempts,
		RetryBaseDelay: cfg.Payout.RetryBaseDelay,
	})

	transactionService := transactionUseCase.NewTransactionService(transactionUseCase.Dependencies{
		UnitOfWork:   store.uow,
		Manager:      txManager,
		Settler:      settler,
		Catalog:      store.catalog,
		Access:       admins,
		Notifier:     partyNotifier,
		IDs:          ids,
		TimeProvider: tp,
		Logger:       appLogger,
		Metrics:      recorder,
	}, transactionUseCase.Config{CommissionBasisPoints: cfg.Escrow.CommissionBasisPoints})

	disputeService := disputeUseCase.NewDisputeService(disputeUseCase.Dependencies{
		UnitOfWork:   store.uow,
		Manager:      txManager,
		Settler:      settler,
		Access:       admins,
		Notifier:     partyNotifier,
		IDs:          ids,
		TimeProvider: tp,
		Logger:       appLogger,
		Metrics:      recorder,
	})

	reviewService := review.NewReviewService(store.uow, store.catalog, appLogger)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	var autoReleaser *transactionUseCase.AutoReleaser
	if cfg.Escrow.AutoReleaseEnabled {
		autoReleaser = transactionUseCase.NewAutoReleaser(transactionService, transactionUseCase.AutoReleaseConfig{
			GracePeriod: cfg.Escrow.AutoReleaseGracePeriod,
			Interval:    cfg.Escrow.AutoReleaseInterval,
			BatchSize:   cfg.Escrow.AutoReleaseBatchSize,
		})
		go autoReleaser.Start(workerCtx)
	}

	reconciler := reconcile.NewReconciler(store.uow, transactionService, disputeService, tp, appLogger, reconcile.Config{
		Interval:   cfg.Escrow.ReconcileInterval,
		StaleAfter: cfg.Escrow.ReconcileStaleAfter,
		BatchSize:  cfg.Escrow.ReconcileBatchSize,
	})
	go reconciler.Start(workerCtx)

	router := gin.New()

	var httpMetrics, metricsHandler gin.HandlerFunc
	if promRecorder != nil {
		httpMetrics = promRecorder.Middleware()
		metricsHandler = metrics.Handler(registry)
	}
	routes.SetupMiddlewares(router, appLogger, tp, idgen.NewUUIDGenerator("req_"), httpMetrics)
	routes.SetupRoutes(router, routes.Handlers{
		Transactions: handler.NewTransactionHandler(transactionService, reviewService, appLogger),
		Disputes:     handler.NewDisputeHandler(disputeService, appLogger),
		Health:       handler.NewHealthHandler(store.checks, 2*time.Second, appLogger),
		Metrics:      metricsHandler,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":            server.Addr,
			"env":             cfg.Environment,
			"storage":         cfg.Storage.Driver,
			"payout_provider": cfg.Payout.Provider,
			"admins":          admins.Count(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if autoReleaser != nil {
		autoReleaser.Stop()
	}
	reconciler.Stop()
	stopWorkers()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down transaction manager...", nil)
	txManager.Shutdown()
	partyNotifier.Close()

	appLogger.Info("Server exited gracefully", nil)
}

// openStorage connects the configured backend. The postgres backend is
// migrated before use.
func openStorage(
	ctx context.Context,
	cfg *config.Config,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
	recorder *metrics.PrometheusRecorder,
) (*storage, error) {
	if cfg.Storage.Driver == "memory" {
		store := memory.NewStore(tp)
		appLogger.Warn("Using in-memory storage, state is lost on restart", nil)
		return &storage{
			uow:     memory.NewUnitOfWork(store),
			leases:  memory.NewReleaseLeaseRepository(store),
			catalog: memory.NewItemCatalog(developmentItems()...),
			checks:  map[string]handler.HealthCheck{},
			close:   func() error { return nil },
		}, nil
	}

	dbManager := database.NewManager(database.FromAppConfig(cfg.Database), appLogger, tp)
	if recorder != nil {
		dbManager = dbManager.WithPoolObserver(recorder.ObservePool)
	}
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, err
	}
	if err := dbManager.Migrate(ctx); err != nil {
		_ = dbManager.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &storage{
		uow:     dbManager.CreateUnitOfWork(),
		leases:  dbManager.CreateReleaseLeaseRepository(),
		catalog: dbManager.ItemCatalog(),
		checks:  map[string]handler.HealthCheck{"database": dbManager.Ping},
		close:   dbManager.Close,
	}, nil
}

// buildPayoutService returns the configured provider behind a circuit breaker
func buildPayoutService(
	cfg config.PayoutConfig,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
	recorder *metrics.PrometheusRecorder,
) (external.PayoutService, *payout.CircuitBreaker, error) {
	var provider external.PayoutService
	switch cfg.Provider {
	case "stripe":
		stripeService, err := payout.NewStripePayoutService(payout.StripeConfig{
			SecretKey: cfg.StripeSecretKey,
			Currency:  cfg.Currency,
		}, payout.StaticDestinations(cfg.StripeAccounts), appLogger)
		if err != nil {
			return nil, nil, err
		}
		provider = stripeService
	default:
		provider = payout.NewSimulatedPayoutService(appLogger, tp)
	}

	breaker := payout.NewCircuitBreaker(provider, cfg.BreakerThreshold, cfg.BreakerOpenDuration, tp, appLogger)
	if recorder != nil {
		breaker.OnTransition(func(from, to payout.State) {
			recorder.BreakerTransition(from.String(), to.String())
		})
	}
	return breaker, breaker, nil
}

// developmentItems are the listings served by the in-memory catalog
func developmentItems() []entity.Item {
	bakery := "business-bakery"
	return []entity.Item{
		{ID: "item-bike", SellerID: "user-seller", Price: 12000, Available: true},
		{ID: "item-sofa", SellerID: "user-seller", Price: 45000, Available: true},
		{ID: "item-cake", SellerID: "user-baker", Price: 3500, BusinessID: &bakery, Available: true},
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Storage.Driver {
	case "memory":
	case "postgres":
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or ESCROW_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or ESCROW_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or ESCROW_DB_NAME environment variable)")
		}
		if cfg.IsProduction() && cfg.Database.Password == "" {
			missingConfigs = append(missingConfigs, "database.password (or ESCROW_DB_PASSWORD environment variable)")
		}
	default:
		return fmt.Errorf("invalid storage.driver: %s, must be postgres or memory", cfg.Storage.Driver)
	}

	switch cfg.Payout.Provider {
	case "simulated":
	case "stripe":
		if cfg.Payout.StripeSecretKey == "" {
			missingConfigs = append(missingConfigs, "payout.stripeSecretKey (or ESCROW_STRIPE_SECRET_KEY environment variable)")
		}
		if cfg.Payout.Currency == "" {
			missingConfigs = append(missingConfigs, "payout.currency")
		}
	default:
		return fmt.Errorf("invalid payout.provider: %s, must be simulated or stripe", cfg.Payout.Provider)
	}

	if cfg.Escrow.CommissionBasisPoints < 0 || cfg.Escrow.CommissionBasisPoints > 10000 {
		return fmt.Errorf("escrow.commissionBasisPoints must be between 0 and 10000, got: %d", cfg.Escrow.CommissionBasisPoints)
	}
	if cfg.Escrow.AutoReleaseEnabled && cfg.Escrow.AutoReleaseGracePeriod <= 0 {
		missingConfigs = append(missingConfigs, "escrow.autoReleaseGracePeriod")
	}
	if cfg.Escrow.ReconcileStaleAfter > 0 && cfg.Escrow.ReconcileStaleAfter <= cfg.Escrow.ReleaseLeaseTimeout {
		return fmt.Errorf("escrow.reconcileStaleAfter (%s) must exceed escrow.releaseLeaseTimeout (%s)",
			cfg.Escrow.ReconcileStaleAfter, cfg.Escrow.ReleaseLeaseTimeout)
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.IsProduction() {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Storage.Driver == "postgres" && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Storage.Driver == "memory" {
			warnings = append(warnings, "storage.driver 'memory' loses all escrow state on restart")
		}
		if cfg.Payout.Provider == "simulated" {
			warnings = append(warnings, "payout.provider 'simulated' moves no real money")
		}
		if cfg.Notifier.WebhookURL != "" && cfg.Notifier.WebhookSecret == "" {
			warnings = append(warnings, "notifier.webhookSecret should be set so receivers can verify events")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
