package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aldercommerce/quotebridge-backend/api/routes"
	"github.com/aldercommerce/quotebridge-backend/internal/quotes"
	"github.com/aldercommerce/quotebridge-backend/pkg/config"
	"github.com/aldercommerce/quotebridge-backend/pkg/logger"
	"github.com/aldercommerce/quotebridge-backend/pkg/metrics"
	"github.com/aldercommerce/quotebridge-backend/pkg/shopify"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var platform quotes.DraftOrderCreator
	if cfg.Shopify.Configured() {
		client, err := shopify.NewClient(
			cfg.Shopify.StoreDomain,
			cfg.Shopify.AdminToken,
			shopify.WithAPIVersion(cfg.Shopify.Version()),
		)
		if err != nil {
			logg.Error(context.Background(), "failed to create shopify client", err)
			os.Exit(1)
		}
		platform = client
	} else {
		logg.Warn(context.Background(), "shopify credentials missing; quote requests will be rejected")
	}

	quoteService := quotes.NewService(platform, logg)

	promRegistry := prometheus.NewRegistry()
	requestMetrics := metrics.NewRequestMetrics(promRegistry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, quoteService, requestMetrics, promRegistry),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutting down api server")
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
