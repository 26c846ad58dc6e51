package services

import (
	"dealswapify/internal/models"

	"github.com/shopspring/decimal"
)

var (
	imageFeeRate     = decimal.RequireFromString("0.05")
	videoFeeRate     = decimal.RequireFromString("0.09")
	imageFeeMinPrice = decimal.NewFromInt(3)
)

// CalculateUploadFee returns the fee charged for publishing media with a
// listing priced at price. Images are charged 5% above a price of 3, videos
// always 9%. The result is rounded to cents.
func CalculateUploadFee(price decimal.Decimal, mediaType string) decimal.Decimal {
	switch mediaType {
	case models.MediaTypeImage:
		if price.GreaterThan(imageFeeMinPrice) {
			return price.Mul(imageFeeRate).Round(2)
		}
	case models.MediaTypeVideo:
		return price.Mul(videoFeeRate).Round(2)
	}
	return decimal.Zero
}

// listingUploadFee applies the fee to sale listings only. Donations and
// giveaways are free to publish.
func listingUploadFee(listing *models.Listing) decimal.Decimal {
	if listing.ListingType != models.ListingTypeSale || listing.MediaType == nil {
		return decimal.Zero
	}
	return CalculateUploadFee(listing.Price, *listing.MediaType)
}

// uploadFeePayment returns the pending payment owed for the listing's upload
// fee, keeping any payment method the seller chose. Free listings owe nothing.
func uploadFeePayment(listing *models.Listing) *models.Payment {
	if !listing.UploadFee.IsPositive() {
		return nil
	}

	payment := listing.Payment
	if payment == nil {
		payment = &models.Payment{}
	}
	payment.SellerID = listing.SellerID
	payment.Amount = listing.UploadFee
	payment.Currency = listing.Currency
	payment.PaymentStatus = models.PaymentStatusPending
	return payment
}
