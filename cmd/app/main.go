package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzeria/cmd"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/adapters/out/rabbitmq"
	"pizzeria/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "pizzeria")
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB := mustConnectDB(configs)

	var publisher ports.EventPublisher
	if configs.RabbitMQURL != "" {
		p, err := rabbitmq.Dial(ctx, configs.RabbitMQURL, configs.RabbitMQExchange, appLogger)
		if err != nil {
			log.Fatalf("Error connecting to RabbitMQ: %v", err)
		}
		defer func() { _ = p.Close() }()
		publisher = p
	} else {
		appLogger.Warn("RABBITMQ_URL is empty, order events are not published")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, appLogger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e := app.CreateHTTPServer().NewEcho()
	err := run(ctx, e, configs.HTTPPort)
	jobManager.StopAll()
	if err != nil {
		appLogger.Error("server stopped with error", "error", err)
		return
	}
	appLogger.Info("server stopped")
}

func run(ctx context.Context, e *echo.Echo, port string) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:           requiredVariable("HTTP_PORT"),
		DBHost:             requiredVariable("DB_HOST"),
		DBPort:             requiredVariable("DB_PORT"),
		DBUser:             requiredVariable("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             requiredVariable("DB_NAME"),
		DBSslMode:          os.Getenv("DB_SSLMODE"),
		RabbitMQURL:        os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:   envOrDefault("RABBITMQ_EXCHANGE", rabbitmq.DefaultExchange),
		AssignmentSchedule: os.Getenv("ASSIGNMENT_SCHEDULE"),
	}
}

func requiredVariable(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required", key)
	}
	return value
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
