// Package http assembles the gin engine and the HTTP server of DevFolio.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/DevFolio/internal/interfaces/http/handlers"
	"github.com/turtacn/DevFolio/internal/interfaces/http/middleware"
)

// Route paths.
const (
	PathHealthz       = "/healthz"
	PathHealthzDetail = "/healthz/detail"
	PathReadyz        = "/readyz"
	PathPortfolio     = "/api/portfolio"
	PathPortfolioLang = "/api/portfolio/:lang"
	PathStatus        = "/api/status"
	PathRetry         = "/api/retry"
	PathRefetch       = "/api/refetch"
	PathDismiss       = "/api/notice/dismiss"
)

// DefaultMetricsPath is used when RouterConfig.MetricsPath is empty.
const DefaultMetricsPath = "/metrics"

// RouterConfig aggregates all handler and middleware dependencies required
// to construct the route tree.  Nil handlers leave their routes unregistered.
type RouterConfig struct {
	// Handlers
	PortfolioHandler *handlers.PortfolioHandler
	HealthHandler    *handlers.HealthHandler

	// Middleware
	CORS        *middleware.CORSConfig
	Logging     middleware.LoggingConfig
	RateLimiter middleware.RateLimiter // applied to the action endpoints only

	// Infrastructure
	Logger         logging.Logger
	Metrics        middleware.HTTPMetrics
	MetricsHandler http.Handler
	MetricsPath    string

	// Mode is the gin mode: debug, release or test.
	Mode string
}

// NewRouter constructs the gin engine.  Global middleware runs in the order
// recovery, request id, CORS, logging, metrics.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// --- Global middleware ---
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID())
	if cfg.CORS != nil {
		r.Use(middleware.CORS(*cfg.CORS))
	}
	r.Use(middleware.RequestLogging(cfg.Logger, cfg.Logging))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// --- Probes ---
	if cfg.HealthHandler != nil {
		r.GET(PathHealthz, cfg.HealthHandler.Liveness)
		r.GET(PathHealthzDetail, cfg.HealthHandler.Detailed)
		r.GET(PathReadyz, cfg.HealthHandler.Readiness)
	}

	// --- Metrics ---
	if cfg.MetricsHandler != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = DefaultMetricsPath
		}
		r.GET(path, gin.WrapH(cfg.MetricsHandler))
	}

	// --- Portfolio API ---
	if h := cfg.PortfolioHandler; h != nil {
		r.GET(PathPortfolio, h.GetPortfolio)
		r.GET(PathPortfolioLang, h.GetContent)
		r.GET(PathStatus, h.GetStatus)

		actions := r.Group("")
		if cfg.RateLimiter != nil {
			actions.Use(middleware.RateLimit(cfg.RateLimiter))
		}
		actions.POST(PathRetry, h.Retry)
		actions.POST(PathRefetch, h.Refetch)
		actions.POST(PathDismiss, h.DismissNotice)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			Code:      "COMMON_005",
			Message:   "route not found",
			RequestID: middleware.GetRequestID(c),
		})
	})

	return r
}
