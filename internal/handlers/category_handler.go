package handlers

import (
	"errors"
	"net/http"

	"dealswapify/internal/dto"
	apierrors "dealswapify/internal/errors"
	"dealswapify/internal/models"
	"dealswapify/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category browsing requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories lists all marketplace categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

// GetCategory returns a category and records the visit
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} models.Category
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_002 - Invalid category ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	category, err := h.categoryService.VisitCategory(c.Request().Context(), categoryID)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// ListCategoryListings lists the listings of one category tab
// @Summary List category listings
// @Description Buyer, Donator and Giveaway tabs filter by type=sale, donation or giveaway
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param type query string false "Listing type"
// @Param status query string false "Listing status"
// @Param offset query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.ListingListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid pagination"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id}/listings [get]
func (h *CategoryHandler) ListCategoryListings(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	filters := models.ListingFilters{
		ListingType: c.QueryParam("type"),
		Status:      c.QueryParam("status"),
	}
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", services.DefaultListingPageSize)

	listings, total, err := h.categoryService.ListCategoryListings(c.Request().Context(), categoryID, filters, offset, limit)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			return SendError(c, apierrors.CategoryNotFound)
		case errors.Is(err, services.ErrInvalidPagination):
			return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("offset and limit must not be negative"))
		case errors.Is(err, models.ErrInvalidListingType):
			return SendError(c, apierrors.ListingInvalidType)
		case errors.Is(err, models.ErrInvalidListingStatus):
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("status must be one of active, sold, expired, rejected"))
		}
		return SendSystemError(c, err)
	}

	if listings == nil {
		listings = []models.Listing{}
	}

	return c.JSON(http.StatusOK, dto.ListingListResponse{
		Listings: listings,
		Total:    total,
		Offset:   offset,
		Limit:    services.ListingPageSize(limit),
	})
}

// GetCategoryAnalytics returns the most visited categories
// @Summary Category analytics
// @Tags Categories
// @Produce json
// @Param limit query int false "Number of categories (max 50)"
// @Success 200 {object} dto.CategoryAnalyticsResponse
// @Router /categories/analytics [get]
func (h *CategoryHandler) GetCategoryAnalytics(c echo.Context) error {
	limit := getIntParam(c, "limit", services.DefaultAnalyticsLimit)

	summaries, err := h.categoryService.GetCategoryAnalytics(c.Request().Context(), limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPagination) {
			return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("limit must not be negative"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryAnalyticsResponse{Categories: summaries})
}
