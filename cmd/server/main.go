// Package main runs the item tracker HTTP service. Dependencies are wired
// with samber/do; SIGINT or SIGTERM drains requests and flushes telemetry.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-item-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-item-tracker/internal/app"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/auth"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/config"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/health"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is not set (local or prod)")
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := startTelemetry(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(ctx, injector, cfg, logger)

	// Invoking the server builds the whole graph, including the Notion bind.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = otel.flush(ctx)
		return fmt.Errorf("wiring server: %w", err)
	}
	if err := server.Listen(); err != nil {
		_ = otel.flush(ctx)
		return err
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-sigCtx.Done():
		logger.Info("shutdown requested")
	case err := <-serverErr:
		_ = otel.flush(ctx)
		return fmt.Errorf("serving: %w", err)
	}
	stop()

	return shutdown(server, otel, serverErr, logger)
}

// shutdown drains in-flight requests, waits for Start to return and then
// flushes telemetry so spans from the drained requests are exported.
func shutdown(server *adapthttp.Server, otel *otelRuntime, serverErr <-chan error, logger *slog.Logger) error {
	drainCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining requests", slog.Any("error", err))
	}
	<-serverErr

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancelFlush()
	if err := otel.flush(flushCtx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}

	logger.Info("stopped")
	return nil
}

// otelRuntime holds what telemetry needs at exit. With telemetry disabled
// metrics is nil and flush is a no-op.
type otelRuntime struct {
	metrics  *telemetry.Metrics
	flushers []func(context.Context) error
}

func (o *otelRuntime) flush(ctx context.Context) error {
	errs := make([]error, 0, len(o.flushers))
	for _, f := range slices.Backward(o.flushers) {
		errs = append(errs, f(ctx))
	}
	return errors.Join(errs...)
}

func startTelemetry(ctx context.Context, cfg *config.TelemetryConfig) (*otelRuntime, error) {
	rt := &otelRuntime{}
	if !cfg.Enabled {
		return rt, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}
	rt.flushers = append(rt.flushers, tp.Shutdown)

	mp, err := telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		_ = rt.flush(ctx)
		return nil, fmt.Errorf("meter: %w", err)
	}
	rt.flushers = append(rt.flushers, mp.Shutdown)

	if rt.metrics, err = telemetry.NewMetrics(mp, cfg.ServiceName); err != nil {
		_ = rt.flush(ctx)
		return nil, fmt.Errorf("instruments: %w", err)
	}
	return rt, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "notion", metrics, logger), nil
	})

	// The repository binds the configured database over the network, so a
	// missing share or a bad token fails startup.
	do.Provide(injector, func(i do.Injector) (*acl.ItemRepository, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewItemRepository(ctx, client, &cfg.Notion, cfg.Items.Schema(), logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.ItemService, error) {
		repo := do.MustInvoke[*acl.ItemRepository](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		loc, err := cfg.Items.Location()
		if err != nil {
			return nil, fmt.Errorf("items timezone: %w", err)
		}
		return app.NewItemService(repo, logger, app.WithLocation(loc), app.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(_ do.Injector) (*auth.Authenticator, error) {
		a, err := auth.NewAuthenticator(&cfg.Auth)
		if err != nil {
			return nil, err
		}
		if !a.LoginEnabled() {
			logger.Warn("admin login disabled: auth.password_hash is not set")
		}
		if cfg.Auth.TokenSecret == "" {
			logger.Warn("auth.token_secret is not set: sessions will not survive a restart")
		}
		return a, nil
	})

	// Readiness reports the Notion breaker and, when enabled, schema drift of
	// the bound database.
	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(
			health.WithCacheTTL(cfg.Health.CacheTTL),
			health.WithCheckTimeout(cfg.Health.CheckTimeout),
		)
		repo := do.MustInvoke[*acl.ItemRepository](i)
		registry.Register(repo)
		if cfg.Health.SchemaCheck {
			registry.Register(repo.SchemaCheck())
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ItemHandler, error) {
		svc := do.MustInvoke[ports.ItemService](i)
		return handlers.NewItemHandler(svc, cfg.Items.PublicView), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		a := do.MustInvoke[*auth.Authenticator](i)
		return handlers.NewAuthHandler(a, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Items:  do.MustInvoke[*handlers.ItemHandler](i),
			Auth:   do.MustInvoke[*handlers.AuthHandler](i),
			Health: do.MustInvoke[*handlers.HealthHandler](i),
		}
		routerCfg := adapthttp.RouterConfig{
			Sessions:  do.MustInvoke[*auth.Authenticator](i),
			StaticDir: cfg.Server.StaticDir,
			Logger:    logger,
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		mws := []func(nethttp.Handler) nethttp.Handler{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		}
		if cfg.Server.RequestTimeout > 0 {
			mws = append(mws, middleware.Timeout(cfg.Server.RequestTimeout))
		}

		return adapthttp.NewRouter(h, routerCfg, mws...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
