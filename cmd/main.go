package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"insights-api/internal/adapter/gemini"
	httpadapter "insights-api/internal/adapter/http"
	"insights-api/internal/adapter/memory"
	"insights-api/internal/adapter/postgres"
	"insights-api/internal/adapter/usecase"
	"insights-api/internal/config"
	"insights-api/internal/config/configs"
	"insights-api/internal/core/classify"
	"insights-api/internal/core/port"
	"insights-api/internal/db"
	"insights-api/internal/telemetry"
)

// main loads configuration, wires the campaign store, the AI gateway and the
// use cases, then serves HTTP until SIGINT or SIGTERM and shuts down
// gracefully.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env", slog.Any("error", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	fixture := memory.NewStore()

	var campaigns port.CampaignRepository = fixture
	if cfg.Store.Driver == configs.StorePostgres {
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool, memory.Campaigns()); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("campaigns seeded")
		}
		campaigns = postgres.NewCampaignRepository(pool)
	}

	tables, err := classify.LoadTables(cfg.AI.KeywordsFile)
	if err != nil {
		return fmt.Errorf("keyword tables: %w", err)
	}

	metrics := telemetry.New()
	gen := gemini.New(gemini.Options{
		Enabled:  cfg.AI.Enabled,
		APIKey:   cfg.AI.APIKey,
		Endpoint: cfg.AI.APIURL,
		Timeout:  cfg.AI.Timeout,
		Logger:   logger.With(slog.String("component", "gemini")),
		Metrics:  metrics,
	})
	if !gen.Enabled() {
		logger.Warn("ai features disabled: set AI_ENABLED=true and AI_API_KEY")
	}

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Dashboard: usecase.NewDashboardService(campaigns, fixture),
		Assistant: usecase.NewAssistantService(gen, classify.New(tables)),
		Logger:    logger,
		Metrics:   metrics,
	}, httpadapter.Options{
		BasePath:       cfg.HTTP.BasePath,
		MetricsPath:    cfg.HTTP.MetricsPath,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimitRPS:   cfg.AI.RateLimitRPS,
		RateLimitBurst: cfg.AI.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.Driver),
			slog.String("base_path", cfg.HTTP.BasePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
