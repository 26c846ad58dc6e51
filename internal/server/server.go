// Package server wires the HTTP API: middleware, routes and lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dealswapify/internal/config"
	"dealswapify/internal/handlers"
	"dealswapify/internal/logging"
	"dealswapify/internal/middleware"
	"dealswapify/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const maxBodySize = "1M"

// Dependencies are the collaborators the server routes requests to
type Dependencies struct {
	Health       *handlers.HealthCheckHandler
	Categories   *handlers.CategoryHandler
	Listings     *handlers.ListingHandler
	TokenService services.TokenServiceInterface
	Logger       *logging.Logger
	// Registry receives the HTTP error metrics and backs /metrics. Nil uses
	// the default Prometheus registry.
	Registry *prometheus.Registry
}

// Server is the marketplace HTTP API
type Server struct {
	echo        *echo.Echo
	logger      *logging.Logger
	config      *config.Config
	limiter     *middleware.RateLimiter
	stopCleanup context.CancelFunc
	cleanupCtx  context.Context
}

// New builds the echo instance with middleware and routes registered
func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if deps.Health == nil || deps.Categories == nil || deps.Listings == nil || deps.TokenService == nil {
		return nil, errors.New("handlers and token service are required")
	}

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer = deps.Registry
		gatherer = deps.Registry
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	logger := deps.Logger.Named("server")
	errorHandler := middleware.NewErrorHandler(deps.Logger, registerer)
	e.HTTPErrorHandler = errorHandler.HandleHTTPError

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())

	s := &Server{
		echo:        e,
		logger:      logger,
		config:      cfg,
		limiter:     limiter,
		stopCleanup: stopCleanup,
		cleanupCtx:  cleanupCtx,
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(errorHandler.LogSystemErrors())
	e.Use(s.requestLogger())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit(maxBodySize))
	if len(cfg.Server.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.Server.CORSAllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		}))
	}

	s.registerRoutes(deps, gatherer)

	return s, nil
}

func (s *Server) registerRoutes(deps Dependencies, gatherer prometheus.Gatherer) {
	s.echo.GET("/health", deps.Health.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := s.echo.Group("/api/v1", s.limiter.Middleware())
	requireAuth := middleware.RequireAuth(deps.TokenService)

	categories := v1.Group("/categories")
	categories.GET("", deps.Categories.ListCategories)
	categories.GET("/analytics", deps.Categories.GetCategoryAnalytics)
	categories.GET("/:id", deps.Categories.GetCategory)
	categories.GET("/:id/listings", deps.Categories.ListCategoryListings)

	listings := v1.Group("/listings")
	listings.POST("/category-check", deps.Listings.CheckCategory, requireAuth)
	listings.POST("", deps.Listings.CreateListing, requireAuth)
	listings.GET("/:id", deps.Listings.GetListing)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			s.logger.Info(c.Request().Context(), "http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
			)

			return err
		}
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	go s.limiter.RunCleanup(s.cleanupCtx)

	addr := s.config.Address()
	s.logger.Info(context.Background(), "starting http server", zap.String("addr", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "shutting down http server")
	s.stopCleanup()
	return s.echo.Shutdown(ctx)
}
