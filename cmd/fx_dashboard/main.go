package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/krw_rates_dashboard/internal/adapters/chart"
	"github.com/SscSPs/krw_rates_dashboard/internal/adapters/filesystem"
	portsrepo "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/services"
	"github.com/SscSPs/krw_rates_dashboard/internal/handlers"
	"github.com/SscSPs/krw_rates_dashboard/internal/middleware"
	"github.com/SscSPs/krw_rates_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title KRW Exchange Rate Dashboard API
// @version 1.0
// @description Exchange rates of major currencies against the Korean won, reshaped from the statistics export.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	for _, name := range cfg.DataEncodings {
		if !filesystem.SupportedEncoding(name) {
			logger.Warn("Unsupported data encoding will always fail", slog.String("encoding", name))
		}
	}

	repos := portsrepo.RepositoryProvider{
		RawTableRepo: filesystem.NewRawTableRepository(cfg.DataFilePath, cfg.DataEncodings),
	}
	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Warm the cache so the first visitor does not pay for the load. A failure is
	// cached too and shown on the page, so the server still starts.
	if _, err := serviceContainer.Dataset.Observations(context.Background()); err != nil {
		logger.Error("Dataset failed to load", slog.String("path", cfg.DataFilePath), slog.String("error", err.Error()))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Global middleware (logging, recovery, metrics, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimit(rateLimiter),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, chart.NewSVGRenderer(0, 0))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
