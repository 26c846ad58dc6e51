package repositories

import (
	"context"

	"dealswapify/internal/models"

	"github.com/google/uuid"
)

// CategoryRepositoryInterface defines the contract for category repository operations.
// ResolveNameByID and ResolveIDByName make it usable as the category matcher's lookup.
type CategoryRepositoryInterface interface {
	ResolveNameByID(ctx context.Context, id uuid.UUID) (string, error)
	ResolveIDByName(ctx context.Context, name string) (uuid.UUID, error)
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	IncrementVisitCount(ctx context.Context, id uuid.UUID) error
	TopVisited(ctx context.Context, limit int) ([]models.CategoryVisitSummary, error)
}

// ListingRepositoryInterface defines the contract for listing repository operations
type ListingRepositoryInterface interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, filters models.ListingFilters, offset, limit int) ([]models.Listing, int64, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
