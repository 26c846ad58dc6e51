package handlers

import (
	"errors"
	"net/http"
	"strings"

	"dealswapify/internal/dto"
	apierrors "dealswapify/internal/errors"
	"dealswapify/internal/models"
	"dealswapify/internal/services"
	"dealswapify/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var (
	errInvalidPrice      = errors.New("invalid price")
	errInvalidCategoryID = errors.New("invalid category id")
)

// ListingHandler handles listing requests
type ListingHandler struct {
	listingService services.ListingServiceInterface
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService services.ListingServiceInterface) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// CheckCategory checks whether listing text fits the selected category
// @Summary Check listing category
// @Description Runs the keyword category check without storing anything. A suggestion is advisory. Empty text is reported as valid.
// @Tags Listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CategoryCheckRequest true "Listing text and selected category"
// @Success 200 {object} dto.CategoryCheckResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Router /listings/category-check [post]
func (h *ListingHandler) CheckCategory(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CategoryCheckRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	result := h.listingService.CheckCategory(c.Request().Context(), req.Title, req.Description, categoryID)

	return c.JSON(http.StatusOK, dto.NewCategoryCheckResponse(result))
}

// CreateListing creates a listing for the authenticated seller
// @Summary Create listing
// @Description Stores a sale, donation or giveaway listing. The category check never rejects a listing; its outcome is returned alongside.
// @Description Donation listings require recipient_email or recipient_whatsapp. A positive upload fee is recorded as a pending payment.
// @Tags Listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateListingRequest true "Listing details"
// @Success 201 {object} dto.CreateListingResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 400 {object} errors.ErrorResponse "LISTING_007 - Donation recipient required"
// @Failure 422 {object} errors.ErrorResponse "LISTING_005 - Listing could not be created"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /listings [post]
func (h *ListingHandler) CreateListing(c echo.Context) error {
	sellerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	listing, err := listingFromRequest(sellerID, req)
	if err != nil {
		if errors.Is(err, errInvalidCategoryID) {
			return SendError(c, apierrors.CategoryInvalidID)
		}
		return SendError(c, apierrors.ListingInvalidPrice, apierrors.WithDetails("Invalid price"))
	}

	result, err := h.listingService.CreateListing(c.Request().Context(), listing)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidListingType):
			return SendError(c, apierrors.ListingInvalidType)
		case errors.Is(err, models.ErrNegativePrice):
			return SendError(c, apierrors.ListingInvalidPrice)
		case errors.Is(err, services.ErrMediaTypeRequired):
			return SendError(c, apierrors.ListingMediaRequired)
		case errors.Is(err, models.ErrDonationRecipientRequired):
			return SendError(c, apierrors.ListingDonationRecipientRequired)
		case errors.Is(err, services.ErrInvalidListing):
			return SendError(c, apierrors.ListingCreateFailed, apierrors.WithDetails(strings.TrimPrefix(err.Error(), services.ErrInvalidListing.Error()+": ")))
		}
		return SendSystemError(c, err)
	}

	response := dto.CreateListingResponse{
		Listing:   listing,
		UploadFee: listing.UploadFee,
		Message:   "Listing created successfully",
	}
	if result.Outcome != "" {
		check := dto.NewCategoryCheckResponse(result)
		response.CategoryCheck = &check
	}

	return c.JSON(http.StatusCreated, response)
}

// GetListing retrieves a listing by ID
// @Summary Get listing
// @Tags Listings
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Success 200 {object} models.Listing
// @Failure 400 {object} errors.ErrorResponse "LISTING_002 - Invalid listing ID"
// @Failure 404 {object} errors.ErrorResponse "LISTING_001 - Listing not found"
// @Router /listings/{id} [get]
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ListingInvalidID)
	}

	listing, err := h.listingService.GetListing(c.Request().Context(), listingID)
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			return SendError(c, apierrors.ListingNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, listing)
}

func listingFromRequest(sellerID uuid.UUID, req dto.CreateListingRequest) (*models.Listing, error) {
	price := decimal.Zero
	if req.Price != "" {
		var err error
		price, err = decimal.NewFromString(req.Price)
		if err != nil {
			return nil, errInvalidPrice
		}
	}

	listing := &models.Listing{
		SellerID:       sellerID,
		Title:          strings.TrimSpace(req.Title),
		Description:    optionalString(req.Description),
		Price:          price,
		Currency:       strings.ToUpper(req.Currency),
		Condition:      optionalString(req.Condition),
		ListingType:    req.ListingType,
		MediaType:      optionalString(req.MediaType),
		MediaURL:       optionalString(req.MediaURL),
		ExternalLink:   optionalString(req.ExternalLink),
		PickupLocation: optionalString(req.PickupLocation),
		Deadline:       req.Deadline,
	}

	if req.ListingType == models.ListingTypeDonation || req.RecipientEmail != "" || req.RecipientWhatsApp != "" {
		listing.Donation = &models.Donation{
			RecipientEmail:    optionalString(req.RecipientEmail),
			RecipientWhatsApp: optionalString(req.RecipientWhatsApp),
		}
	}
	if req.PaymentMethod != "" {
		listing.Payment = &models.Payment{PaymentMethod: optionalString(req.PaymentMethod)}
	}

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, errInvalidCategoryID
		}
		listing.CategoryID = &categoryID
	}

	return listing, nil
}
