package models

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ListingTypeSale     = "sale"
	ListingTypeDonation = "donation"
	ListingTypeGiveaway = "giveaway"

	ListingStatusActive   = "active"
	ListingStatusSold     = "sold"
	ListingStatusExpired  = "expired"
	ListingStatusRejected = "rejected"

	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Supported listing currencies
var Currencies = []string{"USD", "UGX", "ZAR", "JPY", "CNY"}

var (
	ErrInvalidListingType   = errors.New("invalid listing type")
	ErrInvalidListingStatus = errors.New("invalid listing status")
	ErrInvalidMediaType     = errors.New("invalid media type")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrListingTitleRequired = errors.New("listing title is required")
	ErrListingSellerMissing = errors.New("listing seller is required")
)

// Listing is a user-submitted item offered for sale, donation or giveaway
type Listing struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SellerID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"seller_id"`
	CategoryID          *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Title               string          `gorm:"type:varchar(200);not null" json:"title"`
	Description         *string         `gorm:"type:text" json:"description,omitempty"`
	Price               decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"price"`
	Currency            string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Condition           *string         `gorm:"type:varchar(100)" json:"condition,omitempty"`
	ListingType         string          `gorm:"type:varchar(20);not null;index" json:"listing_type"`
	MediaType           *string         `gorm:"type:varchar(10)" json:"media_type,omitempty"`
	MediaURL            *string         `gorm:"type:text" json:"media_url,omitempty"`
	ExternalLink        *string         `gorm:"type:text" json:"external_link,omitempty"`
	Status              string          `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	PickupLocation      *string         `gorm:"type:text" json:"pickup_location,omitempty"`
	Deadline            *time.Time      `json:"deadline,omitempty"`
	AIValidated         bool            `gorm:"not null;default:false" json:"ai_validated"`
	SuggestedCategoryID *uuid.UUID      `gorm:"type:uuid" json:"suggested_category_id,omitempty"`
	UploadFee           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"upload_fee"`
	CreatedAt           time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Donation *Donation `gorm:"foreignKey:ListingID" json:"donation,omitempty"`
	Payment  *Payment  `gorm:"foreignKey:ListingID" json:"payment,omitempty"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.Status == "" {
		l.Status = ListingStatusActive
	}
	if l.Currency == "" {
		l.Currency = "USD"
	}

	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = now
	}

	return l.Validate()
}

func (l *Listing) BeforeUpdate(tx *gorm.DB) error {
	l.UpdatedAt = time.Now()
	return l.Validate()
}

func (l *Listing) Validate() error {
	if l.SellerID == uuid.Nil {
		return ErrListingSellerMissing
	}
	if strings.TrimSpace(l.Title) == "" {
		return ErrListingTitleRequired
	}
	if !IsValidListingType(l.ListingType) {
		return ErrInvalidListingType
	}
	if !IsValidListingStatus(l.Status) {
		return ErrInvalidListingStatus
	}
	if l.MediaType != nil && !IsValidMediaType(*l.MediaType) {
		return ErrInvalidMediaType
	}
	if !slices.Contains(Currencies, l.Currency) {
		return ErrInvalidCurrency
	}
	if l.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// DescriptionText returns the description or an empty string
func (l *Listing) DescriptionText() string {
	if l.Description == nil {
		return ""
	}
	return *l.Description
}

// ApplyMatchResult records the outcome of the category check on the listing
func (l *Listing) ApplyMatchResult(result MatchResult) {
	l.AIValidated = result.Outcome == MatchValid
	l.SuggestedCategoryID = nil
	if result.HasSuggestion() {
		id := result.SuggestedCategoryID
		l.SuggestedCategoryID = &id
	}
}

func IsValidListingType(listingType string) bool {
	switch listingType {
	case ListingTypeSale, ListingTypeDonation, ListingTypeGiveaway:
		return true
	}
	return false
}

func IsValidListingStatus(status string) bool {
	switch status {
	case ListingStatusActive, ListingStatusSold, ListingStatusExpired, ListingStatusRejected:
		return true
	}
	return false
}

func IsValidMediaType(mediaType string) bool {
	return mediaType == MediaTypeImage || mediaType == MediaTypeVideo
}

// ListingFilters narrows a category listing query
type ListingFilters struct {
	ListingType string
	Status      string
}
