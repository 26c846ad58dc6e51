package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dealswapify/internal/config"
	"dealswapify/internal/database"
	"dealswapify/internal/handlers"
	"dealswapify/internal/logging"
	"dealswapify/internal/repositories"
	"dealswapify/internal/server"
	"dealswapify/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the marketplace HTTP API",
	Long: `Run the marketplace HTTP API until SIGINT or SIGTERM.

Examples:
  # Serve with settings from the environment
  dealswapify serve

  # Use a custom keyword table
  CATEGORY_KEYWORDS_FILE=config/categories.yaml dealswapify serve`,
	RunE: runServe,
}

// app holds the wired service graph shared by serve and check-category
type app struct {
	db       *database.DB
	matcher  services.CategoryMatcherInterface
	lookup   services.CategoryLookup
	listings services.ListingServiceInterface
	catalog  services.CategoryServiceInterface
}

func newApp(cfg *config.Config, logger *logging.Logger, reg prometheus.Registerer) (*app, error) {
	keywords, err := config.LoadCategoryKeywords(cfg.Matcher.KeywordsFile)
	if err != nil {
		return nil, err
	}

	db, err := database.Initialize(cfg, logger)
	if err != nil {
		return nil, err
	}

	categoryRepo := repositories.NewCategoryRepository(db.DB)
	listingRepo := repositories.NewListingRepository(db.DB)

	metrics := services.NewPrometheusMetrics(reg)
	events := services.NewListingLogger(logger)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfigFromMatcher(cfg.Matcher))
	lookup := services.NewGuardedCategoryLookup(categoryRepo, breaker, cfg.Matcher.LookupTimeout, metrics, events)
	matcher := services.NewCategoryMatcher(keywords, lookup, logger)

	return &app{
		db:       db,
		matcher:  matcher,
		lookup:   lookup,
		listings: services.NewListingService(listingRepo, matcher, metrics, events),
		catalog:  services.NewCategoryService(categoryRepo, listingRepo, metrics, events),
	}, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	a, err := newApp(cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.db.Close(); err != nil {
			logger.Warn(ctx, "failed to close database", zap.Error(err))
		}
	}()

	srv, err := server.New(cfg, server.Dependencies{
		Health:       handlers.NewHealthCheckHandler(a.db),
		Categories:   handlers.NewCategoryHandler(a.catalog),
		Listings:     handlers.NewListingHandler(a.listings),
		TokenService: services.NewTokenService(&cfg.JWT),
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info(ctx, "shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return <-errCh
}
