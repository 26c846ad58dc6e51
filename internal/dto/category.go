package dto

import "dealswapify/internal/models"

// CategoryListResponse represents the list of marketplace categories
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
}

// CategoryAnalyticsResponse represents the most visited categories
type CategoryAnalyticsResponse struct {
	Categories []models.CategoryVisitSummary `json:"categories"`
}
