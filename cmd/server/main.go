package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-api/adapters/http"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio API Server...", zap.String("env", cfg.App.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failed connection is logged, requests then fail with 500 until restart.
	db := persistence.NewMongoDB(ctx, cfg, appLogger)

	// Repositories
	projectRepo := persistence.NewMongoProjectRepo(db)
	experienceRepo := persistence.NewMongoExperienceRepo(db)
	profileRepo := persistence.NewMongoProfileRepo(db)

	publisher := event.NewEventPublisher(cfg, appLogger)

	tp, err := tracing.NewTracerProvider(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", err)
	}

	// Use Cases
	projectUseCase := projectUC.NewProjectUseCase(projectRepo, publisher, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, publisher, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, publisher, appLogger)

	// HTTP Handlers
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Project:    httpAdapter.NewProjectHandler(projectUseCase),
		Experience: httpAdapter.NewExperienceHandler(experienceUseCase),
		Profile:    httpAdapter.NewProfileHandler(profileUseCase),
	}, appLogger)
	if tp != nil {
		router = otelhttp.NewHandler(router, cfg.Tracing.ServiceName)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
	if closer, ok := publisher.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			appLogger.Error("Failed to close event publisher", err)
		}
	}
	if tp != nil {
		if err := tp.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Failed to flush traces", err)
		}
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		appLogger.Error("Failed to disconnect MongoDB", err)
	}
	appLogger.Info("Server exited")
}
