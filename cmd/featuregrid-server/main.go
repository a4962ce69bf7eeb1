package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-featuregrid/internal/app"
	"github.com/goliatone/go-featuregrid/internal/platform/config"
	"github.com/goliatone/go-featuregrid/internal/platform/logging"
	"github.com/goliatone/go-featuregrid/internal/platform/otel"
	"github.com/goliatone/go-featuregrid/internal/server"
)

const serviceName = "featuregrid-server"

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%s: %v", serviceName, err)
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	basePath := flag.String("base", "", "path prefix for every route")
	title := flag.String("title", "", "document title for full-page responses")
	flag.Parse()

	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, cfg.Tracing(serviceName))
	if err != nil {
		config.Exitf("%s: tracing: %v", serviceName, err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	mode, err := app.IconMode(cfg.IconMode)
	if err != nil {
		config.Exitf("%s: %v", serviceName, err)
	}
	components, err := app.Build(cfg, logger)
	if err != nil {
		config.Exitf("%s: %v", serviceName, err)
	}

	srv := server.New(components.Orchestrator, components.Icons, logger,
		server.WithBasePath(*basePath),
		server.WithRenderer(cfg.Renderer),
		server.WithIconMode(mode),
		server.WithPageTitle(*title),
	)

	logger.Info("listening", "addr", *addr, "renderer", cfg.Renderer)
	if err := srv.Run(ctx, *addr, cfg.ShutdownTimeout); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
