package dto

import (
	"time"

	"dealswapify/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listing Request DTOs

// CategoryCheckRequest represents the request payload for checking listing text
// against a category. Title and description may be empty; the check then
// reports the selected category as valid.
type CategoryCheckRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
}

// CreateListingRequest represents the request payload for creating a listing
type CreateListingRequest struct {
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Description    string     `json:"description" validate:"max=5000"`
	CategoryID     string     `json:"category_id,omitempty" validate:"omitempty,uuid"`
	ListingType    string     `json:"listing_type" validate:"required,listing_type"`
	Price          string     `json:"price,omitempty" validate:"omitempty,non_negative_amount"`
	Currency       string     `json:"currency,omitempty" validate:"omitempty,currency"`
	Condition      string     `json:"condition,omitempty" validate:"max=100"`
	MediaType      string     `json:"media_type,omitempty" validate:"omitempty,media_type"`
	MediaURL       string     `json:"media_url,omitempty" validate:"omitempty,url"`
	ExternalLink   string     `json:"external_link,omitempty" validate:"omitempty,url"`
	PickupLocation string     `json:"pickup_location,omitempty" validate:"max=500"`
	Deadline       *time.Time `json:"deadline,omitempty"`

	// Donation listings name the recipient to notify
	RecipientEmail    string `json:"recipient_email,omitempty" validate:"omitempty,email,max=255"`
	RecipientWhatsApp string `json:"recipient_whatsapp,omitempty" validate:"omitempty,max=30"`
	// PaymentMethod is how a sale listing's upload fee will be paid
	PaymentMethod     string `json:"payment_method,omitempty" validate:"omitempty,payment_method"`
}

// Listing Response DTOs

// CategoryCheckResponse represents the outcome of a category check
type CategoryCheckResponse struct {
	Outcome               models.MatchOutcome `json:"outcome"`
	Valid                 bool                `json:"valid"`
	SuggestedCategoryID   *uuid.UUID          `json:"suggested_category_id,omitempty"`
	SuggestedCategoryName string              `json:"suggested_category_name,omitempty"`
}

// NewCategoryCheckResponse converts a match result into its API form
func NewCategoryCheckResponse(result models.MatchResult) CategoryCheckResponse {
	response := CategoryCheckResponse{
		Outcome: result.Outcome,
		Valid:   result.IsValid(),
	}
	if result.HasSuggestion() {
		id := result.SuggestedCategoryID
		response.SuggestedCategoryID = &id
		response.SuggestedCategoryName = result.SuggestedCategoryName
	}
	return response
}

// CreateListingResponse represents the response after creating a listing
type CreateListingResponse struct {
	Listing       *models.Listing        `json:"listing"`
	CategoryCheck *CategoryCheckResponse `json:"category_check,omitempty"`
	UploadFee     decimal.Decimal        `json:"upload_fee"`
	Message       string                 `json:"message"`
}

// ListingListResponse represents a paginated list of listings
type ListingListResponse struct {
	Listings []models.Listing `json:"listings"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}
