package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"gitlab.com/modaluna/aftersales/internal/cache"
	"gitlab.com/modaluna/aftersales/internal/db"
	"gitlab.com/modaluna/aftersales/internal/kafka"
	"gitlab.com/modaluna/aftersales/internal/logger"
	"gitlab.com/modaluna/aftersales/internal/repository/postgresql"
	"gitlab.com/modaluna/aftersales/internal/server"
	"gitlab.com/modaluna/aftersales/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zapLogger := logger.New()
	defer func() {
		_ = zapLogger.Sync()
	}()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatalf("Database init error: %v", err)
	}
	defer database.Close()

	db.InitAdmin(database)

	exchangeRepo := postgresql.NewExchangeRepo(database)
	returnRepo := postgresql.NewReturnRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	stg := storage.NewPostgresStorage(database, exchangeRepo, returnRepo, outboxRepo, zapLogger)

	exchangeCache := cache.NewExchangeCache(stg)
	if err := exchangeCache.LoadInitialData(ctx); err != nil {
		log.Fatalf("Failed to warm exchange cache: %v", err)
	}

	producer := kafka.NewKafkaProducer(kafkaBrokers())
	defer func() {
		if err := producer.Close(); err != nil {
			log.Printf("Error closing Kafka producer: %v", err)
		}
	}()

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
		MaxAttempts:  5,
	})

	srv := server.New(stg, userRepo, exchangeCache)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gCtx, serverPort())
	})

	g.Go(func() error {
		publisher.Run(gCtx)
		return nil
	})

	log.Printf("Server started on port %s", serverPort())

	if err := g.Wait(); err != nil {
		log.Fatalf("Service stopped with error: %v", err)
	}

	log.Println("Service gracefully stopped")
}

func serverPort() string {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		return port
	}
	return "9000"
}

func kafkaBrokers() []string {
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		return strings.Split(brokers, ",")
	}
	return []string{"localhost:9092"}
}
