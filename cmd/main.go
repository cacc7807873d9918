package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
	"github.com/KasumiMercury/primind-location-remind/internal/config"
	"github.com/KasumiMercury/primind-location-remind/internal/geofence"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/device"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/handler"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-location-remind/internal/location"
	"github.com/KasumiMercury/primind-location-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-location-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-location-remind/internal/observability/middleware"
	"github.com/KasumiMercury/primind-location-remind/internal/observability/tracing"
)

const serviceName = "location-remind"

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracer, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Tracing.Environment,
		Enabled:        cfg.Tracing.Enabled,
	})
	if err != nil {
		slog.Error("failed to initialize tracing", "error", err)
		return 1
	}

	tracer.Install()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tracer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shutdown tracer provider", "error", err)
		}
	}()

	db, err := initDatabase(cfg.Database)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		return 1
	}

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize publisher", "error", err)
		return 1
	}

	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	clock := clockwork.NewRealClock()
	bridge := device.NewBridge(clock, cfg.Device.Permissions)

	store := app.NewReminderStore(repository.NewReminderRepository(db))

	registry := geofence.NewRegistry(geofence.Dependencies{
		Client:                      bridge,
		Permissions:                 bridge,
		Settings:                    geofence.NewSettingsGate(cfg.Geofence.Strategy, bridge),
		Reminders:                   store,
		Notifier:                    pubsub.NewNotifier(publisher, clock),
		Handles:                     repository.NewGeofenceHandleRepository(db),
		Recorder:                    m,
		Clock:                       clock,
		RequireBackgroundPermission: cfg.Geofence.RequireBackgroundPermission,
	})

	if err := registry.Restore(ctx); err != nil {
		slog.Error("failed to restore geofences", "error", err)
		return 1
	}

	acquirer := location.NewAcquirer(bridge, bridge, clock, m, location.Config{
		MaxAttempts:    cfg.Location.MaxAttempts,
		RetryDelay:     cfg.Location.RetryDelay,
		VerifySettings: true,
	})

	reminderUseCase := app.NewReminderUseCase(store, registry)
	eventUseCase := app.NewGeofenceEventUseCase(registry)
	locationUseCase := app.NewLocationUseCase(acquirer)

	intakeDone, err := startTransitionIntake(ctx, cfg, eventUseCase)
	if err != nil {
		slog.Error("failed to start transition intake", "error", err)
		return 1
	}

	router := setupRouter(m,
		handler.NewReminderHandler(reminderUseCase),
		handler.NewGeofenceHandler(eventUseCase),
		handler.NewLocationHandler(locationUseCase),
		handler.NewDeviceHandler(bridge),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address(), "version", Version)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)
			return 1
		}

		if intakeDone != nil {
			<-intakeDone
		}

		slog.Info("server exited properly")

		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}

		slog.Error("server exited with error", "error", err)

		return 1
	}
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(cfg.SlowThreshold),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func setupRouter(m *metrics.Metrics, handlers ...routeRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:      []string{"/ping", "/metrics"},
		ModuleResolver: middleware.ModuleByPath("/api/v1"),
		TracerName:     serviceName,
		HTTPMetrics:    m.HTTP,
	}))
	router.Use(middleware.PanicRecoveryGin())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(v1)
	}

	return router
}

func setupLogger(cfg config.LogConfig) {
	slog.SetDefault(logging.NewLogger(os.Stdout, cfg.Level, serviceName))
}
