package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-enhancer-api/api"
	"portfolio-enhancer-api/core/interfaces"
	"portfolio-enhancer-api/infrastructure/cache/memory"
	"portfolio-enhancer-api/infrastructure/cache/redis"
	"portfolio-enhancer-api/infrastructure/cache/sqlite"
	stdhttp "portfolio-enhancer-api/infrastructure/http/standard"
	logrusadapter "portfolio-enhancer-api/infrastructure/logger/logrus"
	"portfolio-enhancer-api/infrastructure/notify/ping"
	"portfolio-enhancer-api/pkg/config"

	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the enhancer HTTP API",
		Long: `Serve starts the HTTP API exposing the enhancement pass, sitemap
generation and live page audits. Configuration is read from environment
variables (PORT, CACHE_TYPE, REDIS_ADDRESS, SITE_URL, PING_ENABLED, ...).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := logrusadapter.NewWithOutput(os.Stdout, cfg.Enhancer.LogLevel)
			logger.Info("Starting enhancer API", map[string]interface{}{
				"port":       cfg.Server.Port,
				"cache_type": cfg.Cache.Type,
			})

			cache := buildCache(cfg, logger)
			httpClient := stdhttp.NewClient(30 * time.Second)

			deps := interfaces.Dependencies{
				Cache:      cache,
				HTTPClient: httpClient,
				Logger:     logger,
			}
			if cfg.Enhancer.PingEnabled {
				deps.Notifier = ping.NewNotifier(httpClient, logger)
			}

			router := api.NewRouter(deps, api.Config{
				RateLimit: cfg.Server.RateLimit,
			})

			srv := &http.Server{
				Addr:         ":" + cfg.Server.Port,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", map[string]interface{}{
					"address": srv.Addr,
				})
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-quit:
			}

			logger.Info("Shutting down server...", nil)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			logger.Info("Server stopped", nil)
			return nil
		},
	}
}

// buildCache selects the cache backend from configuration, falling back to
// memory when a backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	}

	logger.Info("Using memory cache", nil)
	expiration := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	return memory.NewMemoryCache(expiration, 10*time.Minute)
}
