package repositories

import (
	"context"
	"testing"
	"time"

	"dealswapify/internal/models"

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

// ListingRepositoryTestSuite is the test suite for the listing repository
type ListingRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	repo     ListingRepositoryInterface
	ctx      context.Context
	category *models.Category
}

// SetupTest runs before each test
func (s *ListingRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Category{}, &models.Listing{}, &models.Donation{}, &models.Payment{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewListingRepository(db)
	s.ctx = context.Background()

	s.category = &models.Category{Name: "Electronics"}
	require.NoError(s.T(), db.Create(s.category).Error)
}

// TearDownTest runs after each test
func (s *ListingRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestListingRepositoryTestSuite runs the test suite
func TestListingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ListingRepositoryTestSuite))
}

func (s *ListingRepositoryTestSuite) newListing(listingType string) *models.Listing {
	description := gofakeit.Sentence(6)
	return &models.Listing{
		SellerID:    uuid.New(),
		CategoryID:  &s.category.ID,
		Title:       gofakeit.ProductName(),
		Description: &description,
		Price:       decimal.NewFromFloat(gofakeit.Float64Range(1, 500)).Round(2),
		ListingType: listingType,
	}
}

func (s *ListingRepositoryTestSuite) TestCreate_ValidListing() {
	listing := s.newListing(models.ListingTypeSale)

	err := s.repo.Create(s.ctx, listing)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, listing.ID)
	assert.Equal(s.T(), models.ListingStatusActive, listing.Status)
}

func (s *ListingRepositoryTestSuite) TestCreate_Nil() {
	err := s.repo.Create(s.ctx, nil)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "listing cannot be nil")
}

func (s *ListingRepositoryTestSuite) TestCreate_InvalidListing() {
	listing := s.newListing("auction")

	err := s.repo.Create(s.ctx, listing)
	assert.ErrorIs(s.T(), err, models.ErrInvalidListingType)
}

func (s *ListingRepositoryTestSuite) TestGetByID_PreloadsCategory() {
	listing := s.newListing(models.ListingTypeDonation)
	suggested := uuid.New()
	listing.SuggestedCategoryID = &suggested
	require.NoError(s.T(), s.repo.Create(s.ctx, listing))

	found, err := s.repo.GetByID(s.ctx, listing.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), listing.Title, found.Title)
	assert.True(s.T(), listing.Price.Equal(found.Price))
	require.NotNil(s.T(), found.Category)
	assert.Equal(s.T(), "Electronics", found.Category.Name)
	require.NotNil(s.T(), found.SuggestedCategoryID)
	assert.Equal(s.T(), suggested, *found.SuggestedCategoryID)
}

func (s *ListingRepositoryTestSuite) TestCreate_StoresDonationRecipient() {
	listing := s.newListing(models.ListingTypeDonation)
	listing.Price = decimal.Zero
	email := gofakeit.Email()
	listing.Donation = &models.Donation{RecipientEmail: &email}

	require.NoError(s.T(), s.repo.Create(s.ctx, listing))

	found, err := s.repo.GetByID(s.ctx, listing.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), found.Donation)
	assert.Equal(s.T(), listing.ID, found.Donation.ListingID)
	assert.Equal(s.T(), listing.SellerID, found.Donation.DonorID)
	assert.Equal(s.T(), email, *found.Donation.RecipientEmail)
	assert.Nil(s.T(), found.Donation.RecipientWhatsApp)
	assert.Equal(s.T(), models.DonationStatusPending, found.Donation.Status)
	assert.Nil(s.T(), found.Payment)
}

func (s *ListingRepositoryTestSuite) TestCreate_StoresPendingPayment() {
	listing := s.newListing(models.ListingTypeSale)
	listing.Price = decimal.NewFromInt(100)
	listing.UploadFee = decimal.NewFromInt(9)
	method := "MTN MoMo"
	listing.Payment = &models.Payment{Amount: listing.UploadFee, Currency: "USD", PaymentMethod: &method}

	require.NoError(s.T(), s.repo.Create(s.ctx, listing))

	found, err := s.repo.GetByID(s.ctx, listing.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), found.Payment)
	assert.Equal(s.T(), listing.SellerID, found.Payment.SellerID)
	assert.True(s.T(), decimal.NewFromInt(9).Equal(found.Payment.Amount))
	assert.Equal(s.T(), models.PaymentStatusPending, found.Payment.PaymentStatus)
	assert.Nil(s.T(), found.Donation)
}

func (s *ListingRepositoryTestSuite) TestCreate_InvalidDonationRollsBackListing() {
	listing := s.newListing(models.ListingTypeDonation)
	listing.Donation = &models.Donation{}

	err := s.repo.Create(s.ctx, listing)
	assert.ErrorIs(s.T(), err, models.ErrDonationRecipientRequired)

	var count int64
	require.NoError(s.T(), s.db.Model(&models.Listing{}).Count(&count).Error)
	assert.Zero(s.T(), count)
}

func (s *ListingRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	assert.ErrorIs(s.T(), err, ErrListingNotFound)
}

func (s *ListingRepositoryTestSuite) TestListByCategory_FiltersAndPaginates() {
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		listing := s.newListing(models.ListingTypeSale)
		listing.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(s.T(), s.repo.Create(s.ctx, listing))
	}
	require.NoError(s.T(), s.repo.Create(s.ctx, s.newListing(models.ListingTypeGiveaway)))

	sold := s.newListing(models.ListingTypeSale)
	sold.Status = models.ListingStatusSold
	require.NoError(s.T(), s.repo.Create(s.ctx, sold))

	listings, total, err := s.repo.ListByCategory(s.ctx, s.category.ID, models.ListingFilters{
		ListingType: models.ListingTypeSale,
		Status:      models.ListingStatusActive,
	}, 0, 2)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), total)
	require.Len(s.T(), listings, 2)
	assert.True(s.T(), listings[0].CreatedAt.After(listings[1].CreatedAt))

	all, total, err := s.repo.ListByCategory(s.ctx, s.category.ID, models.ListingFilters{}, 0, 50)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5), total)
	assert.Len(s.T(), all, 5)
}

func (s *ListingRepositoryTestSuite) TestListByCategory_OtherCategoryIsEmpty() {
	require.NoError(s.T(), s.repo.Create(s.ctx, s.newListing(models.ListingTypeSale)))

	listings, total, err := s.repo.ListByCategory(s.ctx, uuid.New(), models.ListingFilters{}, 0, 10)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), total)
	assert.Empty(s.T(), listings)
}

func (s *ListingRepositoryTestSuite) TestCountByCategory() {
	require.NoError(s.T(), s.repo.Create(s.ctx, s.newListing(models.ListingTypeSale)))
	require.NoError(s.T(), s.repo.Create(s.ctx, s.newListing(models.ListingTypeDonation)))

	count, err := s.repo.CountByCategory(s.ctx, s.category.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), count)
}
