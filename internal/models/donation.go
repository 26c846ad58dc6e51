package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DonationStatusPending   = "pending"
	DonationStatusNotified  = "notified"
	DonationStatusCompleted = "completed"
)

var (
	ErrDonationRecipientRequired = errors.New("donation recipient email or whatsapp is required")
	ErrInvalidDonationStatus     = errors.New("invalid donation status")
)

// Donation links a donation listing to the recipient the donor tagged
type Donation struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ListingID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"listing_id"`
	DonorID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"donor_id"`
	RecipientEmail    *string    `gorm:"type:varchar(255)" json:"recipient_email,omitempty"`
	RecipientWhatsApp *string    `gorm:"column:recipient_whatsapp;type:varchar(30)" json:"recipient_whatsapp,omitempty"`
	Status            string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	NotifiedAt        *time.Time `json:"notified_at,omitempty"`
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Status == "" {
		d.Status = DonationStatusPending
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	return d.Validate()
}

// Validate checks that at least one recipient contact is present
func (d *Donation) Validate() error {
	if blank(d.RecipientEmail) && blank(d.RecipientWhatsApp) {
		return ErrDonationRecipientRequired
	}
	switch d.Status {
	case DonationStatusPending, DonationStatusNotified, DonationStatusCompleted:
		return nil
	}
	return ErrInvalidDonationStatus
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
