package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"music-storefront/internal/config"
	"music-storefront/internal/repository"
	"music-storefront/internal/server"
	"music-storefront/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the storefront HTTP server.

Sessions and catalog lookups are kept in Redis when REDIS_URL is set and
in process memory otherwise.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := config.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	var cache repository.Cache
	if redisClient != nil {
		defer redisClient.Close()
		cache = repository.NewRedisCache(redisClient)
		logger.Info("using redis session store")
	} else {
		cache = repository.NewMemoryCache(time.Minute)
		logger.Warn("REDIS_URL is empty, sessions are kept in memory")
	}

	api, err := newShopClient()
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(api, repository.NewSessionRepository(cache))
	services := service.NewServices(repos, cache, cfg, logger)
	app := server.New(cfg, services, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("shop_api", cfg.ShopAPIURL),
			zap.String("environment", cfg.Environment),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
