package models

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ListingTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *ListingTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&Category{}, &Listing{})
	require.NoError(s.T(), err)

	s.db = db
}

func (s *ListingTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func TestListingTestSuite(t *testing.T) {
	suite.Run(t, new(ListingTestSuite))
}

func (s *ListingTestSuite) newListing() *Listing {
	description := gofakeit.Sentence(8)
	return &Listing{
		SellerID:    uuid.New(),
		Title:       gofakeit.ProductName(),
		Description: &description,
		Price:       decimal.NewFromFloat(25.50),
		Currency:    "USD",
		ListingType: ListingTypeSale,
	}
}

func (s *ListingTestSuite) TestBeforeCreate_SetsDefaults() {
	listing := s.newListing()
	listing.Currency = ""

	err := s.db.Create(listing).Error
	require.NoError(s.T(), err)

	assert.NotEqual(s.T(), uuid.Nil, listing.ID)
	assert.Equal(s.T(), ListingStatusActive, listing.Status)
	assert.Equal(s.T(), "USD", listing.Currency)
	assert.False(s.T(), listing.CreatedAt.IsZero())
	assert.False(s.T(), listing.UpdatedAt.IsZero())
}

func (s *ListingTestSuite) TestValidate() {
	tests := []struct {
		name    string
		mutate  func(l *Listing)
		wantErr error
	}{
		{"valid sale listing", func(l *Listing) { l.Status = ListingStatusActive }, nil},
		{"missing seller", func(l *Listing) { l.SellerID = uuid.Nil }, ErrListingSellerMissing},
		{"blank title", func(l *Listing) { l.Title = "   " }, ErrListingTitleRequired},
		{"unknown listing type", func(l *Listing) { l.ListingType = "auction" }, ErrInvalidListingType},
		{"unknown status", func(l *Listing) { l.Status = "archived" }, ErrInvalidListingStatus},
		{"unknown currency", func(l *Listing) { l.Status = ListingStatusActive; l.Currency = "EUR" }, ErrInvalidCurrency},
		{"negative price", func(l *Listing) { l.Status = ListingStatusActive; l.Price = decimal.NewFromInt(-1) }, ErrNegativePrice},
		{"unknown media type", func(l *Listing) {
			l.Status = ListingStatusActive
			media := "audio"
			l.MediaType = &media
		}, ErrInvalidMediaType},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			listing := s.newListing()
			tt.mutate(listing)

			err := listing.Validate()
			if tt.wantErr == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *ListingTestSuite) TestApplyMatchResult() {
	suggestedID := uuid.New()

	s.Run("valid outcome marks listing validated", func() {
		listing := s.newListing()
		listing.ApplyMatchResult(ValidMatch())
		s.True(listing.AIValidated)
		s.Nil(listing.SuggestedCategoryID)
	})

	s.Run("suggested outcome stores suggestion", func() {
		listing := s.newListing()
		listing.ApplyMatchResult(SuggestedMatch(suggestedID, "Electronics"))
		s.False(listing.AIValidated)
		s.Require().NotNil(listing.SuggestedCategoryID)
		s.Equal(suggestedID, *listing.SuggestedCategoryID)
	})

	s.Run("indeterminate outcome is not validated and has no suggestion", func() {
		listing := s.newListing()
		listing.AIValidated = true
		listing.ApplyMatchResult(IndeterminateMatch())
		s.False(listing.AIValidated)
		s.Nil(listing.SuggestedCategoryID)
	})
}

func (s *ListingTestSuite) TestDescriptionText() {
	listing := s.newListing()
	listing.Description = nil
	s.Equal("", listing.DescriptionText())

	text := "barely used"
	listing.Description = &text
	s.Equal("barely used", listing.DescriptionText())
}

func TestMatchResult_IsValid(t *testing.T) {
	assert.True(t, ValidMatch().IsValid())
	assert.True(t, IndeterminateMatch().IsValid())
	assert.False(t, SuggestedMatch(uuid.New(), "Books").IsValid())
	assert.False(t, SuggestedMatch(uuid.Nil, "Books").HasSuggestion())
}
