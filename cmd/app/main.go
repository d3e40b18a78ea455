package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales/cmd"
	inkafka "sales/internal/adapters/in/kafka"
	"sales/internal/adapters/out/catalog"
	outkafka "sales/internal/adapters/out/kafka"
	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/outboxrepo"
	"sales/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine: the environment may already be populated.
	_ = godotenv.Load(".env")

	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.New(configs.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(configs, sugar); err != nil {
		sugar.Fatalw("Sales service stopped with error", "error", err)
	}
}

func run(configs cmd.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	variants, err := catalog.Load(configs.CatalogFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	sugar.Infow("Variant catalog loaded", "file", configs.CatalogFile, "variants", variants.Len())

	brokers := configs.KafkaBrokers()
	topics := []string{configs.KafkaOrderPlacedTopic, configs.KafkaOrderChangedTopic}
	if configs.KafkaInboundTopic != "" {
		topics = append(topics, configs.KafkaInboundTopic)
	}
	if err := outkafka.EnsureTopics(brokers, topics...); err != nil {
		return fmt.Errorf("ensure topics: %w", err)
	}

	producer, err := outkafka.NewEventProducer(brokers, outkafka.Topics{
		OrderPlaced:  configs.KafkaOrderPlacedTopic,
		OrderChanged: configs.KafkaOrderChangedTopic,
	})
	if err != nil {
		return err
	}
	defer func() { _ = producer.Close() }()

	app := cmd.NewCompositionRoot(configs, gormDB, variants, producer, sugar)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	if configs.KafkaInboundTopic != "" {
		createHandler := app.CreateCreateSalesOrderCommandHandler()
		consumer, err := inkafka.NewOrderConsumer(brokers, configs.KafkaConsumerGroup, configs.KafkaInboundTopic, &createHandler, sugar)
		if err != nil {
			return err
		}
		defer func() { _ = consumer.Close() }()

		go func() {
			if err := consumer.Start(ctx); err != nil {
				sugar.Errorw("Order consumer stopped", "error", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	app.CreateHTTPServer().RegisterRoutes(e)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()
	sugar.Infow("Sales service started", "port", configs.HTTPPort)

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	sugar.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.SalesOrderDTO{}, &outboxrepo.OutboxMessageDTO{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gormDB, nil
}
