package services

import (
	"context"
	"errors"
	"fmt"

	"dealswapify/internal/models"
	"dealswapify/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultListingPageSize = 20
	MaxListingPageSize     = 100
	DefaultAnalyticsLimit  = 10
	MaxAnalyticsLimit      = 50
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	listingRepo  repositories.ListingRepositoryInterface
	metrics      MetricsRecorderInterface
	events       ListingLoggerInterface
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	listingRepo repositories.ListingRepositoryInterface,
	metrics MetricsRecorderInterface,
	events ListingLoggerInterface,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		listingRepo:  listingRepo,
		metrics:      metrics,
		events:       events,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// VisitCategory returns the category and counts the visit. The returned
// category already includes the new visit.
func (s *categoryService) VisitCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if err := s.categoryRepo.IncrementVisitCount(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to record category visit: %w", err)
	}
	category.VisitCount++

	s.metrics.IncrementCounter(MetricCategoryVisited, nil)
	s.events.LogCategoryVisited(ctx, category.ID, category.Name)

	return category, nil
}

// ListCategoryListings returns one page of a category's listings. A zero
// limit means the default page size; larger limits are capped.
func (s *categoryService) ListCategoryListings(ctx context.Context, categoryID uuid.UUID, filters models.ListingFilters, offset, limit int) ([]models.Listing, int64, error) {
	if offset < 0 || limit < 0 {
		return nil, 0, ErrInvalidPagination
	}
	if filters.ListingType != "" && !models.IsValidListingType(filters.ListingType) {
		return nil, 0, models.ErrInvalidListingType
	}
	if filters.Status != "" && !models.IsValidListingStatus(filters.Status) {
		return nil, 0, models.ErrInvalidListingStatus
	}

	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, 0, ErrCategoryNotFound
		}
		return nil, 0, fmt.Errorf("failed to get category: %w", err)
	}

	listings, total, err := s.listingRepo.ListByCategory(ctx, categoryID, filters, offset, ListingPageSize(limit))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, total, nil
}

func (s *categoryService) GetCategoryAnalytics(ctx context.Context, limit int) ([]models.CategoryVisitSummary, error) {
	if limit < 0 {
		return nil, ErrInvalidPagination
	}

	summaries, err := s.categoryRepo.TopVisited(ctx, clampLimit(limit, DefaultAnalyticsLimit, MaxAnalyticsLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to get category analytics: %w", err)
	}
	return summaries, nil
}

// ListingPageSize returns the page size actually used for a requested limit
func ListingPageSize(limit int) int {
	return clampLimit(limit, DefaultListingPageSize, MaxListingPageSize)
}

func clampLimit(limit, defaultLimit, maxLimit int) int {
	if limit == 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
