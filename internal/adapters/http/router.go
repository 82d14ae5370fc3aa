package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/http/handlers"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/http/middleware"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/platform/config"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline for page requests.
// A search page can fan out twenty object fetches plus translations, so
// this is deliberately generous.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// GalleryHandler handles the gallery pages and image API.
	GalleryHandler *handlers.GalleryHandler

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline on the page and API routes
//
// Route groups:
//   - /-/ (internal): Health endpoints
//   - / (public): Gallery pages and the additional-images API
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Register health endpoints (no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.Timeout > 0 {
		engine.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.GalleryHandler != nil {
		cfg.GalleryHandler.RegisterGalleryRoutes(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	galleryHandler *handlers.GalleryHandler,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:         logger,
		AppConfig:      appCfg,
		GalleryHandler: galleryHandler,
		HealthHandler:  healthHandler,
		Timeout:        DefaultRequestTimeout,
	}
}
