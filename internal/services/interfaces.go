package services

import (
	"context"
	"time"

	"dealswapify/internal/models"

	"github.com/google/uuid"
)

// CategoryLookup resolves categories between their IDs and names.
// Implementations may block on I/O and must honor ctx.
type CategoryLookup interface {
	ResolveNameByID(ctx context.Context, id uuid.UUID) (string, error)
	ResolveIDByName(ctx context.Context, name string) (uuid.UUID, error)
}

// CategoryMatcherInterface checks that listing text fits the category the seller picked
type CategoryMatcherInterface interface {
	// Validate never fails; lookup problems degrade to a non-blocking outcome.
	Validate(ctx context.Context, title, description string, selectedCategoryID uuid.UUID) models.MatchResult
}

// CategoryServiceInterface defines category browsing operations
type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	// VisitCategory returns the category and records the visit.
	VisitCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategoryListings(ctx context.Context, categoryID uuid.UUID, filters models.ListingFilters, offset, limit int) ([]models.Listing, int64, error)
	GetCategoryAnalytics(ctx context.Context, limit int) ([]models.CategoryVisitSummary, error)
}

// ListingServiceInterface defines listing operations
type ListingServiceInterface interface {
	CheckCategory(ctx context.Context, title, description string, categoryID uuid.UUID) models.MatchResult
	// CreateListing stores the listing and returns the advisory category check.
	CreateListing(ctx context.Context, listing *models.Listing) (models.MatchResult, error)
	GetListing(ctx context.Context, id uuid.UUID) (*models.Listing, error)
}

type TokenServiceInterface interface {
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type ListingLoggerInterface interface {
	LogCategoryCheckCompleted(ctx context.Context, categoryID uuid.UUID, result models.MatchResult)
	LogListingCreated(ctx context.Context, listing *models.Listing, durationMs int64)
	LogListingCreationFailed(ctx context.Context, sellerID uuid.UUID, errorMsg string, durationMs int64)
	LogCategoryVisited(ctx context.Context, categoryID uuid.UUID, name string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}
