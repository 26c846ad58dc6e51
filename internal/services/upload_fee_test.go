package services

import (
	"testing"

	"dealswapify/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateUploadFee(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		mediaType string
		expected  string
	}{
		{name: "image above threshold", price: "100", mediaType: models.MediaTypeImage, expected: "5"},
		{name: "image at threshold is free", price: "3", mediaType: models.MediaTypeImage, expected: "0"},
		{name: "image below threshold is free", price: "2.99", mediaType: models.MediaTypeImage, expected: "0"},
		{name: "image rounds to cents", price: "3.33", mediaType: models.MediaTypeImage, expected: "0.17"},
		{name: "video", price: "50", mediaType: models.MediaTypeVideo, expected: "4.5"},
		{name: "cheap video is still charged", price: "1", mediaType: models.MediaTypeVideo, expected: "0.09"},
		{name: "free video", price: "0", mediaType: models.MediaTypeVideo, expected: "0"},
		{name: "no media", price: "100", mediaType: "", expected: "0"},
		{name: "unknown media", price: "100", mediaType: "audio", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := CalculateUploadFee(decimal.RequireFromString(tt.price), tt.mediaType)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(fee), "got %s", fee)
		})
	}
}

func TestListingUploadFee(t *testing.T) {
	image := models.MediaTypeImage

	t.Run("sale listing is charged", func(t *testing.T) {
		listing := &models.Listing{ListingType: models.ListingTypeSale, Price: decimal.NewFromInt(20), MediaType: &image}
		assert.Equal(t, "1.00", listingUploadFee(listing).StringFixed(2))
	})

	t.Run("donation is free", func(t *testing.T) {
		listing := &models.Listing{ListingType: models.ListingTypeDonation, Price: decimal.NewFromInt(20), MediaType: &image}
		assert.True(t, listingUploadFee(listing).IsZero())
	})

	t.Run("sale without media is free", func(t *testing.T) {
		listing := &models.Listing{ListingType: models.ListingTypeSale, Price: decimal.NewFromInt(20)}
		assert.True(t, listingUploadFee(listing).IsZero())
	})
}
