package services

import (
	"context"

	"dealswapify/internal/logging"
	"dealswapify/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListingLogger provides structured event logging for listing and category operations
type ListingLogger struct {
	logger *logging.Logger
}

// NewListingLogger creates a new listing logger
func NewListingLogger(logger *logging.Logger) ListingLoggerInterface {
	return &ListingLogger{
		logger: logger.Named("listing_events"),
	}
}

// LogCategoryCheckCompleted logs the outcome of a category check
func (ll *ListingLogger) LogCategoryCheckCompleted(ctx context.Context, categoryID uuid.UUID, result models.MatchResult) {
	fields := []zap.Field{
		zap.String("event_type", "category_check_completed"),
		zap.String("category_id", categoryID.String()),
		zap.String("outcome", string(result.Outcome)),
	}
	if result.HasSuggestion() {
		fields = append(fields,
			zap.String("suggested_category_id", result.SuggestedCategoryID.String()),
			zap.String("suggested_category_name", result.SuggestedCategoryName),
		)
	}
	ll.logger.Info(ctx, "category check completed", fields...)
}

// LogListingCreated logs a stored listing. Titles, descriptions and donation
// recipients are user content and are not logged.
func (ll *ListingLogger) LogListingCreated(ctx context.Context, listing *models.Listing, durationMs int64) {
	fields := []zap.Field{
		zap.String("event_type", "listing_created"),
		zap.String("listing_id", listing.ID.String()),
		zap.String("seller_id", listing.SellerID.String()),
		zap.String("listing_type", listing.ListingType),
		zap.Bool("ai_validated", listing.AIValidated),
		zap.String("upload_fee", listing.UploadFee.StringFixed(2)),
		zap.Int64("duration_ms", durationMs),
	}
	if listing.CategoryID != nil {
		fields = append(fields, zap.String("category_id", listing.CategoryID.String()))
	}
	if listing.SuggestedCategoryID != nil {
		fields = append(fields, zap.String("suggested_category_id", listing.SuggestedCategoryID.String()))
	}
	if listing.Donation != nil {
		fields = append(fields, zap.String("donation_id", listing.Donation.ID.String()))
	}
	if listing.Payment != nil {
		fields = append(fields, zap.String("payment_id", listing.Payment.ID.String()))
	}
	ll.logger.Info(ctx, "listing created", fields...)
}

// LogListingCreationFailed logs a rejected or failed listing creation
func (ll *ListingLogger) LogListingCreationFailed(ctx context.Context, sellerID uuid.UUID, errorMsg string, durationMs int64) {
	ll.logger.Warn(ctx, "listing creation failed",
		zap.String("event_type", "listing_creation_failed"),
		zap.String("seller_id", sellerID.String()),
		zap.String("error", errorMsg),
		zap.Int64("duration_ms", durationMs),
	)
}

// LogCategoryVisited logs a category page visit
func (ll *ListingLogger) LogCategoryVisited(ctx context.Context, categoryID uuid.UUID, name string) {
	ll.logger.Debug(ctx, "category visited",
		zap.String("event_type", "category_visited"),
		zap.String("category_id", categoryID.String()),
		zap.String("category", name),
	)
}

// LogCircuitBreakerStateChange logs circuit breaker transitions
func (ll *ListingLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	ll.logger.Warn(ctx, "circuit breaker state changed",
		zap.String("event_type", "circuit_breaker_state_change"),
		zap.String("service", service),
		zap.String("old_state", oldState),
		zap.String("new_state", newState),
	)
}
