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

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-group-matching/internal/config"
	"github.com/KasumiMercury/primind-group-matching/internal/domain"
	"github.com/KasumiMercury/primind-group-matching/internal/handler"
	"github.com/KasumiMercury/primind-group-matching/internal/health"
	"github.com/KasumiMercury/primind-group-matching/internal/infra/matchrecorder"
	"github.com/KasumiMercury/primind-group-matching/internal/infra/repository"
	"github.com/KasumiMercury/primind-group-matching/internal/observability/metrics"
	"github.com/KasumiMercury/primind-group-matching/internal/service/collector"
	"github.com/KasumiMercury/primind-group-matching/internal/service/coverage"
	"github.com/KasumiMercury/primind-group-matching/internal/service/match"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	matchMetrics, err := metrics.NewMatchMetrics()
	if err != nil {
		slog.Error("failed to initialize match metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local, BigQuery for gcloud
	resultRecorder, err := matchrecorder.NewRecorder(ctx, matchrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize match result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close match result recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := repository.OpenPostgres(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect postgres",
			slog.String("event", "postgres.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to access postgres pool", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close postgres pool", slog.String("error", err.Error()))
		}
	}()

	var (
		redisClient   *redis.Client
		snapshotStore domain.MatchSnapshotRepository
	)
	if cfg.Match.SnapshotsDisabled {
		slog.Info("match snapshots disabled")
	} else {
		redisClient, err = connectRedis(ctx, cfg.Redis)
		if err != nil {
			return 1
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()
		snapshotStore = repository.NewSnapshotRepository(redisClient)
	}

	intervalCollector := collector.NewCollector(
		repository.NewRosterRepository(db),
		repository.NewUserRepository(db),
		repository.NewIntervalRepository(db),
		cfg.Match.FetchConcurrency,
		matchMetrics,
	)

	matchService := match.NewService(
		intervalCollector,
		coverage.NewEvaluator(cfg.Match.EvaluationStrategy),
		snapshotStore,
		resultRecorder,
		cfg.Match,
		matchMetrics,
	)
	matchHandler := handler.NewMatchHandler(matchService, cfg.Match.RequestTimeout)

	healthChecker := health.NewChecker(sqlDB, redisClient, Version)

	r := newRouter(cfg, httpMetrics, healthChecker, matchHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("evaluation_strategy", string(cfg.Match.EvaluationStrategy)),
			slog.Uint64("default_min_per_group", uint64(cfg.Match.DefaultMinPerGroup)),
			slog.Uint64("default_max_results", uint64(cfg.Match.DefaultMaxResults)),
			slog.Bool("snapshots_enabled", snapshotStore != nil),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func connectRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: cfg.TLSConfig(),
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	slog.Info("redis connected",
		slog.String("addr", cfg.Addr),
	)

	return redisClient, nil
}
