package main

import (
	"context"
	"net/http"

	"internist/internal/config"
	"internist/internal/internist"
	"internist/pkg/logger"
	"internist/pkg/metafetch/htmlmeta"
	"internist/pkg/metrics"
	"internist/pkg/registry"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// getRegistry loads the domain registry from the configured file, or the
// built-in table when no file is configured.
func getRegistry(ctx context.Context, cfg *config.Config) *registry.Static {
	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		logger.Fatal(ctx, "could not load registry", zap.String("path", cfg.Registry.Path), zap.Error(err))
	}

	return reg
}

// getMetrics creates the metrics provider along with a cleanup function that
// flushes it.
func getMetrics(ctx context.Context) (*metrics.Provider, func(ctx context.Context)) {
	mp, err := metrics.NewProvider()
	if err != nil {
		logger.Fatal(ctx, "could not create metrics provider", zap.Error(err))
	}

	return mp, func(ctx context.Context) {
		logger.Info(ctx, "stopping metrics provider...")
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop metrics provider", zap.Error(err))
		}
	}
}

// getInternist wires the lookup service with the outbound HTML fetcher.
func getInternist(ctx context.Context, cfg *config.Config, meter metric.Meter) internist.Internist {
	fetcher := htmlmeta.New(&http.Client{}, htmlmeta.Options{
		UserAgent:    cfg.Fetcher.UserAgent,
		MaxBodyBytes: cfg.Fetcher.MaxBodyBytes,
	})

	svc, err := internist.New(internist.Deps{
		Registry: getRegistry(ctx, cfg),
		Fetcher:  fetcher,
		Meter:    meter,
	}, internist.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create internist service", zap.Error(err))
	}

	return svc
}
