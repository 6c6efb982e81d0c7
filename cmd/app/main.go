package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"foodorder/cmd"
	"foodorder/internal/adapters/out/redisbus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig(logger)

	gormDB, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	redisClient, err := connectRedis(context.Background(), config, logger)
	if err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}

	bus := redisbus.NewBus(redisClient, "foodorder", logger)

	root := cmd.NewCompositionRoot(config, gormDB, bus, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reactor := root.CreateReactor()
	if err := reactor.Start(ctx); err != nil {
		logger.Error("Failed to start event reactor", "error", err)
		os.Exit(1)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	bus.Close()
	reactor.Wait()
}

// connectRedis pings the broker with bounded exponential backoff before giving
// up. Once connected, in-flight reconnection is handled by the client itself.
func connectRedis(ctx context.Context, config cmd.Config, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	const maxAttempts = 5
	delay := 500 * time.Millisecond

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		if attempt < maxAttempts {
			logger.Warn("Redis not reachable, retrying", "attempt", attempt, "delay", delay, "error", err)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= 2
		}
	}

	return nil, err
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		DBHost:               envOrDefault("DB_HOST", "localhost"),
		DBPort:               envOrDefault("DB_PORT", "5432"),
		DBUser:               envOrDefault("DB_USER", "postgres"),
		DBPassword:           envOrDefault("DB_PASSWORD", "postgres"),
		DBName:               envOrDefault("DB_NAME", "foodorder"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:            envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		OutboxRelaySchedule:  envOrDefault("OUTBOX_RELAY_SCHEDULE", ""),
		OutboxRelayBatchSize: envIntOrDefault("OUTBOX_RELAY_BATCH_SIZE", 100),
		ReactorMaxAttempts:   envIntOrDefault("REACTOR_MAX_ATTEMPTS", 5),
		ReactorRetryDelay:    envDurationOrDefault("REACTOR_RETRY_DELAY", time.Second),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func envDurationOrDefault(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
