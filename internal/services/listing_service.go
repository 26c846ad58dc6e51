package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealswapify/internal/models"
	"dealswapify/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrInvalidListing     = errors.New("invalid listing")
	ErrMediaTypeRequired  = errors.New("media type is required when media is attached")
	ErrDonationNotAllowed = errors.New("donation details are only accepted for donation listings")
)

// listingService implements ListingServiceInterface
type listingService struct {
	listingRepo repositories.ListingRepositoryInterface
	matcher     CategoryMatcherInterface
	metrics     MetricsRecorderInterface
	events      ListingLoggerInterface
}

// NewListingService creates a listing service that checks listing content
// against the selected category before storing it
func NewListingService(
	listingRepo repositories.ListingRepositoryInterface,
	matcher CategoryMatcherInterface,
	metrics MetricsRecorderInterface,
	events ListingLoggerInterface,
) ListingServiceInterface {
	return &listingService{
		listingRepo: listingRepo,
		matcher:     matcher,
		metrics:     metrics,
		events:      events,
	}
}

// CheckCategory runs the category matcher without storing anything
func (s *listingService) CheckCategory(ctx context.Context, title, description string, categoryID uuid.UUID) models.MatchResult {
	result := s.validateCategory(ctx, title, description, categoryID)
	s.events.LogCategoryCheckCompleted(ctx, categoryID, result)
	return result
}

// CreateListing stores a new listing. The category check is advisory: a
// suggested category is recorded on the listing but never rejects it.
// Donation listings must name a recipient, and a positive upload fee is
// recorded as a pending payment.
func (s *listingService) CreateListing(ctx context.Context, listing *models.Listing) (models.MatchResult, error) {
	start := time.Now()

	if listing.Status == "" {
		listing.Status = models.ListingStatusActive
	}
	if listing.Currency == "" {
		listing.Currency = "USD"
	}

	if err := listing.Validate(); err != nil {
		s.recordCreationFailure(ctx, listing.SellerID, "validation", err, start)
		return models.MatchResult{}, fmt.Errorf("%w: %w", ErrInvalidListing, err)
	}
	if listing.MediaURL != nil && listing.MediaType == nil {
		s.recordCreationFailure(ctx, listing.SellerID, "validation", ErrMediaTypeRequired, start)
		return models.MatchResult{}, ErrMediaTypeRequired
	}
	if err := checkDonation(listing); err != nil {
		s.recordCreationFailure(ctx, listing.SellerID, "validation", err, start)
		return models.MatchResult{}, err
	}

	var result models.MatchResult
	if listing.CategoryID != nil {
		result = s.validateCategory(ctx, listing.Title, listing.DescriptionText(), *listing.CategoryID)
	}
	listing.ApplyMatchResult(result)

	listing.UploadFee = listingUploadFee(listing)
	listing.Payment = uploadFeePayment(listing)

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		s.recordCreationFailure(ctx, listing.SellerID, "storage", err, start)
		return models.MatchResult{}, fmt.Errorf("failed to create listing: %w", err)
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricListingCreated, map[string]string{"listing_type": listing.ListingType})
	s.metrics.RecordProcessingTime(MetricListingCreation, duration)
	s.events.LogListingCreated(ctx, listing, duration.Milliseconds())

	return result, nil
}

// GetListing retrieves a listing with its category
func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}

func checkDonation(listing *models.Listing) error {
	if listing.ListingType != models.ListingTypeDonation {
		if listing.Donation != nil {
			return fmt.Errorf("%w: %w", ErrInvalidListing, ErrDonationNotAllowed)
		}
		return nil
	}
	if listing.Donation == nil {
		return models.ErrDonationRecipientRequired
	}
	listing.Donation.Status = models.DonationStatusPending
	return listing.Donation.Validate()
}

func (s *listingService) validateCategory(ctx context.Context, title, description string, categoryID uuid.UUID) models.MatchResult {
	start := time.Now()
	result := s.matcher.Validate(ctx, title, description, categoryID)
	s.metrics.IncrementCounter(MetricCategoryValidation, map[string]string{"outcome": string(result.Outcome)})
	s.metrics.RecordProcessingTime(MetricCategoryValidation, time.Since(start))
	return result
}

func (s *listingService) recordCreationFailure(ctx context.Context, sellerID uuid.UUID, reason string, err error, start time.Time) {
	s.metrics.IncrementCounter(MetricListingCreateFailed, map[string]string{"reason": reason})
	s.events.LogListingCreationFailed(ctx, sellerID, err.Error(), time.Since(start).Milliseconds())
}
