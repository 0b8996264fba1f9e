package server

import (
	"context"
	"net/http"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Server is the HTTP surface of the dashboard API
type Server struct {
	Echo        *echo.Echo
	rateLimiter *middleware.RateLimiter
}

// New creates the echo instance with middleware and every route registered
func New(cfg *config.Config, db *gorm.DB, svc *Services, gatherer prometheus.Gatherer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, "If-None-Match", middleware.TraceIDHeader},
		ExposeHeaders: []string{"ETag", middleware.TraceIDHeader},
	}))

	healthHandler := handlers.NewHealthCheckHandler(db, svc.Breaker)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	chartHandler := handlers.NewChartHandler(svc.Charts)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	optionsHandler := handlers.NewOptionsHandler(svc.Options)

	api := e.Group("/api/v1", limiter.Middleware())

	charts := api.Group("/charts")
	charts.GET("/types", chartHandler.ListChartTypes)
	charts.GET("/:chartType/metadata", chartHandler.GetChartMetadata)
	charts.GET("/:chartType", chartHandler.GetChart)

	api.GET("/dashboard/summary", dashboardHandler.GetSummary)
	api.GET("/options/:dimension", optionsHandler.ListOptions)

	return &Server{Echo: e, rateLimiter: limiter}
}

// Start listens on the configured address; it returns http.ErrServerClosed after Shutdown
func (s *Server) Start(cfg *config.Config) error {
	return s.Echo.Start(cfg.Server.Host + ":" + cfg.Server.Port)
}

// Shutdown drains in-flight requests and stops the rate limiter cleanup
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.rateLimiter.Stop()
	return s.Echo.Shutdown(ctx)
}
