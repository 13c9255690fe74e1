package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/farellandr/bookcatalog/internal/models"
)

// Stats answers the catalog-wide counts exported as metrics.
type Stats struct {
	db *gorm.DB
}

func NewStats(db *gorm.DB) *Stats {
	return &Stats{db: db}
}

func (s *Stats) CountBooks(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Book{}).Count(&count).Error
	return count, err
}

func (s *Stats) CountActiveBooks(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Book{}).Scopes(models.Active).Count(&count).Error
	return count, err
}

func (s *Stats) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error
	return count, err
}
