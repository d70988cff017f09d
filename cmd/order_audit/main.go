package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/application/audit"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/config"
	kafkainfra "github.com/Mario-Dorado/gestion-sistemas-backend/internal/infrastructure/messaging/kafka"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

// Reads order events from Kafka and writes one audit log line per event.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zl, err := logger.NewZapLogger(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zl.Sync()

	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.EventsTopic == "" {
		zl.Fatal("KAFKA_BROKERS and KAFKA_EVENTS_TOPIC are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := kafkainfra.NewOrderEventConsumer(cfg.Kafka, audit.NewService(zl), zl)
	if err != nil {
		zl.Fatal("create consumer failed", logger.Error(err))
	}
	defer consumer.Close()

	zl.Info("order audit consumer started",
		logger.Any("brokers", cfg.Kafka.Brokers),
		logger.String("topic", cfg.Kafka.EventsTopic),
		logger.String("group", cfg.Kafka.ConsumerGroup),
	)

	if err := consumer.Start(ctx); err != nil {
		zl.Error("order audit consumer stopped", logger.Error(err))
		return
	}
	zl.Info("order audit consumer stopped")
}
