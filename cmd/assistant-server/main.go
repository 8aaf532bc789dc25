// cmd/assistant-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"campus-assistant/internal/alerts"
	"campus-assistant/internal/assistant/executor"
	"campus-assistant/internal/common/aws"
	"campus-assistant/internal/common/config"
	"campus-assistant/internal/common/database"
	"campus-assistant/internal/common/logger"
	"campus-assistant/internal/common/observability"
	"campus-assistant/internal/history"
	"campus-assistant/internal/server"
	"campus-assistant/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assistant server...",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	pgStore := store.NewPostgresStore(pg.DB)
	stores := executor.Stores{
		Classes:     pgStore,
		Events:      pgStore,
		Departments: pgStore,
		FAQs:        pgStore,
	}
	pingers := map[string]server.Pinger{"postgres": pg}

	// --- Init Elasticsearch with retry (FAQ backend only) ---
	if cfg.Assistant.FAQBackend == "elasticsearch" {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")

		stores.FAQs = store.NewElasticFAQStore(esClient.Client, cfg.Assistant.FAQIndex)
		pingers["elasticsearch"] = esClient
	}

	// --- Init Redis with retry (query history) ---
	var recorder *history.Recorder
	if cfg.Assistant.HistoryEnabled {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")

		recorder = history.NewRecorder(redis.Client, log)
		pingers["redis"] = redis
	}

	// --- Init failure alerting ---
	var alerter executor.FailureReporter
	if cfg.Alerts.Enabled {
		publisher, err := aws.NewSNSPublisher(ctx, cfg.Alerts.Region, cfg.Alerts.TopicARN)
		if err != nil {
			zapLog.Fatal("sns publisher init failed", zap.Error(err))
		}
		alerter = alerts.NewNotifier(cfg.Alerts.FailureThreshold, publisher, log)
		zapLog.Info("SNS alerting enabled", zap.String("topic", cfg.Alerts.TopicARN))
	}

	exec := executor.New(
		&executor.Config{
			EventLimit: cfg.Assistant.EventLimit,
			MaxListed:  cfg.Assistant.MaxListed,
		},
		stores, alerter, obs, log,
	)

	var hist server.History
	if recorder != nil {
		hist = recorder
	}

	srv := server.New(
		&server.Config{
			Addr:         cfg.Server.Address,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
			QueryTimeout: time.Duration(cfg.Assistant.QueryTimeout) * time.Millisecond,
		},
		exec, hist, pingers, log,
	)

	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down http server", zap.Error(err))
	}

	zapLog.Info("Assistant server stopped gracefully")
}
