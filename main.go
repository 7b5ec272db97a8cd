package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/airmarket/airline-demand-api/analytics"
	"github.com/airmarket/airline-demand-api/api"
	"github.com/airmarket/airline-demand-api/config"
	"github.com/airmarket/airline-demand-api/insights"
	"github.com/airmarket/airline-demand-api/opensky"
	"github.com/airmarket/airline-demand-api/openrouter"
	"github.com/airmarket/airline-demand-api/pkg/cache"
	"github.com/airmarket/airline-demand-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Config{Level: "info", Format: "text"})
		logger.Fatal(err, "Failed to load configuration")
	}

	logger.Init(logger.Config{
		Level:  cfg.LoggingConfig.Level,
		Format: cfg.LoggingConfig.Format,
	})
	logger.Info("Configuration loaded", "region", cfg.Region.Name, "environment", cfg.Environment)

	// Flight-state source bound to the region's bounding box
	source := opensky.NewClient(cfg.OpenSkyConfig, cfg.Region.BBox)
	analyzer := analytics.NewAnalyzer(cfg.Region, source)

	// Narrative cache: in-process by default, Redis when configured
	var narrativeCache cache.Cache = cache.NewMemoryCache()
	if cfg.RedisConfig.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConfig.Addr(),
			Password: cfg.RedisConfig.Password,
			DB:       cfg.RedisConfig.DB,
		})
		narrativeCache = cache.NewRedisCache(client, "insights")
		logger.Info("Using Redis narrative cache", "addr", cfg.RedisConfig.Addr())
	}

	// External insight tier only when a credential is configured; without
	// one the formatter renders the deterministic template every time.
	var generators []insights.Generator
	completion, err := openrouter.NewClient(cfg.OpenRouterConfig)
	switch {
	case err == nil:
		generators = append(generators, insights.NewCompletionGenerator(completion))
	case errors.Is(err, openrouter.ErrNoAPIKey):
		logger.Warn("No OpenRouter API key configured, insights fall back to template")
	default:
		logger.Error(err, "Failed to initialize OpenRouter client")
	}
	formatter := insights.NewFormatter(narrativeCache, generators...)

	// Initialize API router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.RegisterRoutes(router, analyzer, formatter, cfg)

	// Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(err, "Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal(err, "Server forced to shutdown")
	}

	logger.Info("Server exited properly")
}
