package repository

import (
	"context"

	"blog-backend/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAllCategories retrieves all categories ordered by title
func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.WithContext(ctx).Order("title ASC").Find(&categories).Error
	return categories, err
}

// CreateCategory creates a category, ErrDuplicate if the title is taken
func (r *CategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return translate(r.db.WithContext(ctx).Create(category).Error)
}
