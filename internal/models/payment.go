package models

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment methods accepted for upload fees
var PaymentMethods = []string{"DFCU Bank", "Credit Card", "MTN MoMo"}

var (
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Payment is the upload fee owed for publishing a paid listing. It is
// recorded as pending; settlement happens outside this service.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ListingID     *uuid.UUID      `gorm:"type:uuid;index" json:"listing_id,omitempty"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"seller_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency      string          `gorm:"type:varchar(3);not null" json:"currency"`
	PaymentMethod *string         `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	TransactionID *string         `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = PaymentStatusPending
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return p.Validate()
}

func (p *Payment) Validate() error {
	if !p.Amount.IsPositive() {
		return ErrInvalidPaymentAmount
	}
	if p.PaymentMethod != nil && !IsValidPaymentMethod(*p.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}
	if !slices.Contains(Currencies, p.Currency) {
		return ErrInvalidCurrency
	}
	return nil
}

func IsValidPaymentMethod(method string) bool {
	return slices.Contains(PaymentMethods, method)
}
