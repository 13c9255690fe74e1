package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/farellandr/bookcatalog/internal/models"
	"github.com/farellandr/bookcatalog/internal/repository"
)

type CategoryService struct {
	categories *repository.CategoryRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories *repository.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		logger:     logger.With().Str("service", "categories").Logger(),
	}
}

func (s *CategoryService) ListAllCategories(ctx context.Context, page int) (repository.Page[models.Category], error) {
	result, err := s.categories.Paginate(ctx, page, PerPage)
	if err != nil {
		return repository.Page[models.Category]{}, failure(s.logger, err, "failed to retrieve categories")
	}
	return result, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := s.categories.Create(ctx, &category); err != nil {
		return models.Category{}, failure(s.logger, err, "category creation failed")
	}
	return category, nil
}

func (s *CategoryService) ShowCategory(ctx context.Context, id uint) (models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return models.Category{}, lookupFailure(s.logger, err, categoryNotFound, "failed to retrieve category")
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, changes models.Category) (models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return models.Category{}, lookupFailure(s.logger, err, categoryNotFound, "failed to update category")
	}

	if err := s.categories.Update(ctx, &category, changes); err != nil {
		return models.Category{}, failure(s.logger, err, "failed to update category")
	}

	updated, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return models.Category{}, failure(s.logger, err, "failed to reload category")
	}
	return updated, nil
}

// DeleteCategory removes the category together with its books.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) (bool, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return false, lookupFailure(s.logger, err, categoryNotFound, "failed to delete category")
	}

	if err := s.categories.Delete(ctx, &category); err != nil {
		return false, failure(s.logger, err, "failed to delete category")
	}
	return true, nil
}
