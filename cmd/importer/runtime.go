package main

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-stats/internal/app"
	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/observability"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// runtime is what every import subcommand needs: configuration, a logger and
// the tracing and profiling hooks.
type runtime struct {
	cfg     config.Config
	logger  *logging.Logger
	metrics *observability.ImportMetrics
	cleanup []func()
}

func newRuntime(command string) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, usageError(fmt.Errorf("load config: %w", err))
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat).With("command", command)
	logging.SetDefault(logger)
	rt := &runtime{cfg: cfg, logger: logger, metrics: observability.NewImportMetrics()}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	rt.onClose(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	})

	stopProfiler, err := observability.InitPyroscope(cfg, command, logger)
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}
	rt.onClose(func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("pyroscope stop failed", "error", err)
		}
	})

	return rt, nil
}

func (rt *runtime) onClose(fn func()) {
	rt.cleanup = append(rt.cleanup, fn)
}

func (rt *runtime) close() {
	for i := len(rt.cleanup) - 1; i >= 0; i-- {
		rt.cleanup[i]()
	}
	_ = rt.logger.Sync()
}

func (rt *runtime) withStore(ctx context.Context, fn func(store *app.Store) error) error {
	store, err := app.OpenStore(ctx, rt.cfg, rt.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			rt.logger.Warn("close store failed", "error", err)
		}
	}()
	return fn(store)
}

func (rt *runtime) writeMetrics(path string) {
	if path == "" {
		return
	}
	if err := rt.metrics.WriteTextfile(path); err != nil {
		rt.logger.Error("write metrics file failed", "path", path, "error", err)
		return
	}
	rt.logger.Info("metrics file written", "path", path)
}
