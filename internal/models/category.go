package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryOthers is the reserved catch-all category. It has no keywords and
// accepts any listing content.
const CategoryOthers = "Others"

var ErrCategoryNameRequired = errors.New("category name is required")

// Category is a marketplace browsing bucket such as Electronics or Furniture
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	ImageURL    *string   `gorm:"type:text" json:"image_url,omitempty"`
	VisitCount  int64     `gorm:"not null;default:0" json:"visit_count"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	return c.Validate()
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	return nil
}

// IsOthers reports whether the category is the reserved catch-all
func (c *Category) IsOthers() bool {
	return c.Name == CategoryOthers
}

// CategoryVisitSummary is a category with its visit and listing counts, used
// for the category analytics view
type CategoryVisitSummary struct {
	CategoryID   uuid.UUID `json:"category_id"`
	Name         string    `json:"name"`
	VisitCount   int64     `json:"visit_count"`
	ListingCount int64     `json:"listing_count"`
}
