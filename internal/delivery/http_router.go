package delivery

import (
	"time"

	"adboard/internal/delivery/middleware"
	"adboard/pkg/logger"
	"adboard/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterOptions tunes the middleware chain.
type RouterOptions struct {
	Timeout            time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
}

type HTTPRouter struct {
	handlers *HTTPHandlers
	logger   *logger.Logger
	metrics  *metrics.Metrics
	options  RouterOptions
}

func NewHTTPRouter(handlers *HTTPHandlers, logger *logger.Logger, metrics *metrics.Metrics, options RouterOptions) *HTTPRouter {
	return &HTTPRouter{
		handlers: handlers,
		logger:   logger,
		metrics:  metrics,
		options:  options,
	}
}

func (r *HTTPRouter) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerValidation()

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.Recovery(r.logger))
	router.Use(middleware.Metrics(r.metrics))
	router.Use(middleware.Timeout(r.options.Timeout))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", "X-Request-ID"}
	config.ExposeHeaders = []string{"X-Request-ID"}

	router.Use(cors.New(config))

	// Health endpoint
	router.GET("/health", r.handlers.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(r.options.RateLimitPerSecond, r.options.RateLimitBurst, r.metrics))
	{
		v1.GET("/", r.handlers.GetAPIInfo)
		v1.GET("", r.handlers.GetAPIInfo)

		dashboard := v1.Group("/dashboard")
		{
			dashboard.POST("/keywords", r.handlers.QueryKeywords)
			dashboard.GET("/summary", r.handlers.GetSummary)
			dashboard.GET("/chart", r.handlers.GetChart)
			dashboard.GET("/rows/:id/expand", r.handlers.ExpandRow)
		}

		seed := v1.Group("/seed")
		{
			seed.POST("/run", r.handlers.SeedRun)
		}

		export := v1.Group("/export")
		{
			export.POST("/run", r.handlers.ExportRun)
		}
	}

	// Prometheus metrics endpoint
	router.GET("/metrics", middleware.PrometheusHandler())

	return router
}
