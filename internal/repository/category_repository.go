package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/farellandr/bookcatalog/internal/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Paginate(ctx context.Context, page, perPage int) (Page[models.Category], error) {
	page, perPage = normalizePage(page, perPage)
	result := Page[models.Category]{CurrentPage: page, PerPage: perPage}

	if err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&result.Total).Error; err != nil {
		return result, err
	}

	categories := make([]models.Category, 0, perPage)
	if result.PastEnd() {
		result.Items = categories
		return result, nil
	}

	if err := r.db.WithContext(ctx).Scopes(paginate(page, perPage)).Order("id ASC").Find(&categories).Error; err != nil {
		return result, err
	}
	result.Items = categories

	return result, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	return category, err
}

func (r *CategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	_, err := r.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update writes the non-zero fields of changes onto category.
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category, changes models.Category) error {
	return r.db.WithContext(ctx).Model(category).Updates(changes).Error
}

// Delete removes a category together with its books.
func (r *CategoryRepository) Delete(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Book{}).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
}

// ListWithBooks returns every category with its books projected to the
// nested listing fields.
func (r *CategoryRepository) ListWithBooks(ctx context.Context) ([]models.CategoryWithBooks, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "author", "is_active", "category_id").Order("id ASC")
		}).
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	listing := make([]models.CategoryWithBooks, 0, len(categories))
	for _, category := range categories {
		listing = append(listing, models.NewCategoryWithBooks(category))
	}
	return listing, nil
}
