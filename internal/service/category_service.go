package service

import (
	"context"
	"errors"

	"blog-backend/internal/models"
	"blog-backend/internal/repository"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, unavailable("list categories", err)
	}
	return categories, nil
}

// CreateCategory adds a category with a unique title
func (s *CategoryService) CreateCategory(ctx context.Context, title string) (*models.Category, error) {
	category := &models.Category{Title: title}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCategoryExists
		}
		return nil, unavailable("create category", err)
	}
	return category, nil
}
