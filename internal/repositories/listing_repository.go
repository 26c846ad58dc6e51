package repositories

import (
	"context"
	"errors"
	"fmt"

	"dealswapify/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingRepository handles database operations for listings
type ListingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) ListingRepositoryInterface {
	return &ListingRepository{
		db: db,
	}
}

// Create creates a new listing together with its donation and payment
// records, if any, in a single transaction
func (r *ListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	if listing == nil {
		return errors.New("listing cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(listing).Error; err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}

		if listing.Donation != nil {
			listing.Donation.ListingID = listing.ID
			listing.Donation.DonorID = listing.SellerID
			if err := tx.Create(listing.Donation).Error; err != nil {
				return fmt.Errorf("failed to create donation: %w", err)
			}
		}

		if listing.Payment != nil {
			listing.Payment.ListingID = &listing.ID
			listing.Payment.SellerID = listing.SellerID
			if err := tx.Create(listing.Payment).Error; err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}
		}

		return nil
	})
}

// GetByID retrieves a listing with its category, donation and payment
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.WithContext(ctx).Preload("Category").Preload("Donation").Preload("Payment").Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing by ID: %w", err)
	}

	return &listing, nil
}

// ListByCategory returns a page of listings in a category, newest first, and
// the total number of listings matching the filters
func (r *ListingRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, filters models.ListingFilters, offset, limit int) ([]models.Listing, int64, error) {
	var listings []models.Listing
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Listing{}).Where("category_id = ?", categoryID)
	if filters.ListingType != "" {
		query = query.Where("listing_type = ?", filters.ListingType)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&listings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}

	return listings, total, nil
}

// CountByCategory returns the number of listings in a category
func (r *ListingRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Listing{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}

	return count, nil
}
