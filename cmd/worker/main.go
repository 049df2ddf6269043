package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	auditUC "github.com/khoahotran/portfolio-api/internal/application/usecase/audit"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio audit worker...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	db := persistence.NewMongoDB(ctx, cfg, appLogger)
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Disconnect(disconnectCtx); err != nil {
			appLogger.Error("Failed to disconnect MongoDB", err)
		}
	}()

	// Worker Use Case
	recordEventUC := auditUC.NewRecordEventUseCase(persistence.NewMongoAuditRepo(db), appLogger)

	// Kafka Consumer
	consumer, err := event.NewKafkaConsumerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka consumer", err)
	}
	defer consumer.Close()

	if err := consumer.Run(ctx, recordEventUC.Execute); err != nil {
		appLogger.Error("Worker stopped", err)
		return
	}
	appLogger.Info("Worker exited")
}
