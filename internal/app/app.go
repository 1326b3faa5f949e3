package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/qcm-math/internal/catalog"
	"github.com/gokatarajesh/qcm-math/internal/config"
	"github.com/gokatarajesh/qcm-math/internal/db/repository"
	"github.com/gokatarajesh/qcm-math/internal/logging"
	"github.com/gokatarajesh/qcm-math/internal/metrics"
	"github.com/gokatarajesh/qcm-math/internal/quiz"
	"github.com/gokatarajesh/qcm-math/internal/scoring"
	"github.com/gokatarajesh/qcm-math/internal/server"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps the logger, the subject catalog, the optional Postgres and
// Redis backends and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Info().Msg("starting application bootstrap")

	catalogCfg := catalog.DefaultConfig()
	if cfg.Quiz.SubjectsFile != "" {
		loaded, err := catalog.LoadFile(cfg.Quiz.SubjectsFile)
		if err != nil {
			return nil, err
		}
		catalogCfg = loaded
		logger.Info().Str("file", cfg.Quiz.SubjectsFile).Msg("subject configuration loaded")
	}
	cat, err := catalog.New(catalogCfg)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	a := &Application{cfg: cfg, logger: logger}

	var recent quiz.RecentStore
	if cfg.Redis.Enabled() {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := a.redis.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable at startup")
		}
		recent = quiz.NewRedisRecentStore(a.redis, cfg.Quiz.RecentTTL)
	} else {
		logger.Info().Msg("REDIS_ADDR not set; recent questions kept in memory")
		recent = quiz.NewMemoryRecentStore(cfg.Quiz.RecentTTL)
	}

	var recorder scoring.Recorder
	if cfg.Postgres.Enabled() {
		pool, err := pgxpool.New(ctx, cfg.Postgres.DSN())
		if err != nil {
			a.close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.pool = pool
		recorder = repository.NewSubmissionRepository(pool)
	} else {
		logger.Warn().Msg("PG_HOST not set; score history disabled")
	}

	generator := quiz.NewGenerator(cat, logger, quiz.Options{
		Recent:        recent,
		Metrics:       m,
		DedupAttempts: cfg.Quiz.DedupAttempts,
	})
	engine := scoring.NewEngine(scoring.ScoringConfig{
		Scale:  cfg.Quiz.ScoreScale,
		Offset: cfg.Quiz.ScoreOffset,
	})

	a.http = server.NewHTTPServer(cfg, logger, server.Handlers{
		Quiz:    quiz.NewHTTPHandler(generator, logger),
		Scoring: scoring.NewHTTPHandler(engine, recorder, m, logger),
	})
	logger.Info().Strs("subjects", cat.Names()).Msg("application ready")
	return a, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("context cancelled, shutting down")
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
	case err := <-errCh:
		a.close()
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}
	a.close()

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}
}
