// Package main is the entry point for the gallery service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/clients"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/clients/acl"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/http"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/http/handlers"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/app"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/platform/config"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/platform/logging"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/platform/telemetry"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)
	logging.SetDefault(logger)

	logger.Info("starting gallery service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create HTTP clients for the downstream services
	collectionHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Collection.BaseURL,
		ServiceName: cfg.Services.Collection.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating collection HTTP client: %w", err)
	}

	translationHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Translation.BaseURL,
		ServiceName: cfg.Services.Translation.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating translation HTTP client: %w", err)
	}

	// 7. Create the downstream adapters (ACL pattern)
	collectionClient := acl.NewCollectionClient(acl.CollectionClientConfig{
		Client: collectionHTTP,
		Logger: logger,
	})

	translator := acl.NewTranslationClient(acl.TranslationClientConfig{
		Client: translationHTTP,
		Logger: logger,
	})

	if err := healthRegistry.Register(collectionClient); err != nil {
		return fmt.Errorf("registering collection health check: %w", err)
	}

	if err := healthRegistry.Register(translator); err != nil {
		return fmt.Errorf("registering translation health check: %w", err)
	}

	// 8. Create the gallery service (application layer)
	galleryService := app.NewGalleryService(app.GalleryServiceConfig{
		Collection: collectionClient,
		Translator: translator,
		Logger:     logger,
	})

	// 9. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	galleryHandler := handlers.NewGalleryHandler(galleryService)

	// 10. Create HTTP server (installs the page templates)
	server, err := http.New(&cfg.Server, logger)
	if err != nil {
		return fmt.Errorf("creating HTTP server: %w", err)
	}

	// 11. Setup router with all middleware and routes
	routerCfg := http.RouterConfig{
		Logger:         logger,
		AppConfig:      &cfg.App,
		GalleryHandler: galleryHandler,
		HealthHandler:  healthHandler,
		Timeout:        http.DefaultRequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
