package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskmanagement123/canamort"
	"github.com/riskmanagement123/canamort/internal/config"
	"github.com/riskmanagement123/canamort/internal/observability"
	"github.com/riskmanagement123/canamort/internal/server"
	"github.com/riskmanagement123/canamort/internal/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	shutdownTracing, err := tracing.Init(cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		logger.Error("tracing init failed", "error", err)
		os.Exit(1)
	}

	if err := canamort.Start(canamort.Config{}); err != nil {
		logger.Error("engine init failed", "error", err)
		os.Exit(1)
	}

	var cache canamort.Cache
	if cfg.RedisAddr != "" {
		cache = canamort.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		logger.Info("using redis result cache", "addr", cfg.RedisAddr)
	} else {
		cache = canamort.NewMemoryCache()
	}

	calculator := canamort.NewCalculator(cache, logger)
	srv := server.New(calculator, logger).HTTPServer(fmt.Sprintf(":%d", cfg.Port))

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("amortd listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		return
	case <-quit:
		logger.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracing shutdown error", "error", err)
	}
}
