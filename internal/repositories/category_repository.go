package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dealswapify/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{
		db: db,
	}
}

// ResolveNameByID returns the name of the category with the given ID
func (r *CategoryRepository) ResolveNameByID(ctx context.Context, id uuid.UUID) (string, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Select("name").Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCategoryNotFound
		}
		return "", fmt.Errorf("failed to resolve category name: %w", err)
	}

	return category.Name, nil
}

// ResolveIDByName returns the ID of the category with exactly the given name
func (r *CategoryRepository) ResolveIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Select("id").Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrCategoryNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve category ID: %w", err)
	}

	return category.ID, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return &category, nil
}

// List returns all categories ordered by name
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// IncrementVisitCount atomically bumps the visit counter of a category
func (r *CategoryRepository) IncrementVisitCount(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to increment visit count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// TopVisited returns the most visited categories with their listing counts
func (r *CategoryRepository) TopVisited(ctx context.Context, limit int) ([]models.CategoryVisitSummary, error) {
	var summaries []models.CategoryVisitSummary

	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.id AS category_id, categories.name AS name, categories.visit_count AS visit_count, COUNT(listings.id) AS listing_count").
		Joins("LEFT JOIN listings ON listings.category_id = categories.id").
		Group("categories.id, categories.name, categories.visit_count").
		Order("categories.visit_count DESC, categories.name ASC").
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category analytics: %w", err)
	}

	return summaries, nil
}

// isDuplicateKeyError detects unique constraint violations for postgres and sqlite
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
