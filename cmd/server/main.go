package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/fingestor/backend/internal/application/billing"
	financeapp "github.com/fingestor/backend/internal/application/finance"
	identityapp "github.com/fingestor/backend/internal/application/identity"
	partnerapp "github.com/fingestor/backend/internal/application/partner"
	reportapp "github.com/fingestor/backend/internal/application/report"
	taxapp "github.com/fingestor/backend/internal/application/tax"
	"github.com/fingestor/backend/internal/infrastructure/auth"
	"github.com/fingestor/backend/internal/infrastructure/config"
	"github.com/fingestor/backend/internal/infrastructure/logger"
	"github.com/fingestor/backend/internal/infrastructure/persistence"
	"github.com/fingestor/backend/internal/infrastructure/persistence/models"
	"github.com/fingestor/backend/internal/infrastructure/telemetry"
	"github.com/fingestor/backend/internal/interfaces/http/handler"
	"github.com/fingestor/backend/internal/interfaces/http/middleware"
	"github.com/fingestor/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting FinGestor backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing is a no-op provider when disabled.
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// sqlite deployments are self-contained; postgres schemas are managed
	// by the migrate command.
	if cfg.Database.Driver == config.DriverSQLite {
		if err := db.DB.AutoMigrate(models.AllModels()...); err != nil {
			log.Fatal("Failed to migrate database schema", zap.Error(err))
		}
	}

	// Repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	costCenterRepo := persistence.NewGormCostCenterRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	billingRepo := persistence.NewGormBillingRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	simulationRepo := persistence.NewGormSimulationRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)

	// Token revocation store. The server runs without Redis in development,
	// falling back to a process-local blacklist.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if cfg.IsProduction() {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, companyRepo, jwtService, blacklist, log)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	accountService := financeapp.NewAccountService(accountRepo)
	categoryService := financeapp.NewCategoryService(categoryRepo)
	costCenterService := financeapp.NewCostCenterService(costCenterRepo)
	transactionService := financeapp.NewTransactionService(transactionRepo, accountRepo, categoryRepo, costCenterRepo)
	billingService := billingapp.NewBillingService(billingRepo, customerRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, customerRepo, supplierRepo)
	simulationService := taxapp.NewSimulationService(simulationRepo)
	dashboardService := reportapp.NewDashboardService(dashboardRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.CORSWithConfig(middleware.CORSFromConfig(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	healthHandler := handler.NewHealthHandler(db, version)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	if cfg.App.DevAuthBypass {
		// Config validation refuses this flag in production.
		devCompanyID := uuid.New()
		devUserID := uuid.New()
		log.Warn("Authentication bypass enabled",
			zap.String("company_id", devCompanyID.String()),
			zap.String("user_id", devUserID.String()),
		)
		engine.Use(middleware.DevAuthBypass(devCompanyID, devUserID))
	} else {
		jwtConfig := middleware.DefaultJWTConfig(jwtService)
		jwtConfig.TokenBlacklist = blacklist
		jwtConfig.Logger = log
		engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))
	}

	r.Register(
		healthHandler,
		handler.NewAuthHandler(authService, log),
		handler.NewCustomerHandler(customerService, log),
		handler.NewSupplierHandler(supplierService, log),
		handler.NewAccountHandler(accountService, log),
		handler.NewCategoryHandler(categoryService, log),
		handler.NewCostCenterHandler(costCenterService, log),
		handler.NewTransactionHandler(transactionService, log),
		handler.NewTaxHandler(simulationService, log),
		handler.NewBillingHandler(billingService, log),
		handler.NewInvoiceHandler(invoiceService, log),
		handler.NewDashboardHandler(dashboardService, log),
	)
	r.Setup()

	// Plain health probe outside API versioning, for load balancers.
	engine.GET("/health", healthHandler.Health)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
