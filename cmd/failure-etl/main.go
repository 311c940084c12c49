package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/application/dto"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/application/usecase"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/port"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/service"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/infrastructure/config"
	csvsource "github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/infrastructure/csv"
	kafkainfra "github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/infrastructure/kafka"
	infraPG "github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/infrastructure/postgres"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/presentation/rest"
	kafkapkg "github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/kafka"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/observability"
	pgpkg "github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "failure-etl",
	})

	logger.Info("starting failure-etl",
		"http_port", cfg.HTTPPort,
		"error_policy", cfg.ErrorPolicy,
		"score_workers", cfg.ScoreWorkers,
	)

	// Initialize tracing
	if cfg.TracingEnabled() {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: "failure-etl",
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    cfg.OTLPInsecure,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer shutdown(ctx)
		}
	}

	// Initialize metrics
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "failure-etl",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Initialize database
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	pool, err := pgpkg.NewPool(dbCtx, cfg.Postgres)
	dbCancel()
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database", "host", cfg.Postgres.Host, "database", cfg.Postgres.Database)

	// Event publishing is optional; without brokers events only hit the logs.
	var publisher port.EventPublisher = kafkainfra.NewNoopPublisher(logger)
	if cfg.PublishingEnabled() {
		producer, err := kafkapkg.NewProducer(cfg.Kafka)
		if err != nil {
			logger.Error("failed to initialize kafka producer", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		publisher = kafkainfra.NewPublisher(producer, cfg.KafkaTopic, logger)
		logger.Info("event publishing enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.KafkaTopic)
	}

	// Wire dependencies (DI via constructors)
	source := csvsource.NewSource(
		cfg.Sources.AssetsPath,
		cfg.Sources.InspectionsPath,
		cfg.Sources.LeaksPath,
		cfg.Sources.RepairsPath,
	)
	scoredRepo := infraPG.NewScoredAssetRepository(pool)
	rejectRepo := infraPG.NewRejectRepository(pool)
	scorer := service.NewFailureScorer()

	runPipeline, err := usecase.NewRunPipeline(source, scoredRepo, rejectRepo, publisher, scorer, logger)
	if err != nil {
		logger.Error("failed to wire pipeline", "error", err)
		os.Exit(1)
	}

	policy, err := dto.ErrorPolicyFromString(cfg.ErrorPolicy)
	if err != nil {
		logger.Error("invalid error policy", "error", err)
		os.Exit(1)
	}

	// HTTP server (health checks + metrics)
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	httpErrCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			httpErrCh <- err
		}
	}()

	// Run the pipeline once. The probe server keeps serving while it runs.
	runErrCh := make(chan error, 1)
	go func() {
		_, err := runPipeline.Execute(ctx, dto.RunPipelineRequest{
			ErrorPolicy:  policy,
			ScoreWorkers: cfg.ScoreWorkers,
		})
		runErrCh <- err
	}()

	var runErr error
	select {
	case runErr = <-runErrCh:
	case err := <-httpErrCh:
		logger.Error("HTTP server error", "error", err)
		cancel()
		runErr = <-runErrCh
		if runErr == nil {
			runErr = err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received, aborting run")
		runErr = <-runErrCh
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	if runErr != nil {
		logger.Error("pipeline run failed", "error", runErr)
		os.Exit(1)
	}
	logger.Info("failure-etl finished")
}
