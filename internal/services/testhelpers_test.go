package services_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/farellandr/bookcatalog/config"
	"github.com/farellandr/bookcatalog/internal/models"
	"github.com/farellandr/bookcatalog/internal/repository"
	"github.com/farellandr/bookcatalog/internal/services"
)

type fixture struct {
	db         *gorm.DB
	books      *services.BookService
	categories *services.CategoryService
}

func setup(t *testing.T) fixture {
	t.Helper()

	db, err := config.InitDatabase(config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDatabase(db) })

	bookRepo := repository.NewBookRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	logger := zerolog.Nop()

	return fixture{
		db:         db,
		books:      services.NewBookService(bookRepo, categoryRepo, logger),
		categories: services.NewCategoryService(categoryRepo, logger),
	}
}

func (f fixture) category(t *testing.T, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, f.db.Create(&category).Error)
	return category
}

func (f fixture) book(t *testing.T, title string, categoryID uint, active bool) models.Book {
	t.Helper()

	book := models.Book{
		Title:       title,
		Author:      "Jane Doe",
		PublishedAt: models.NewDate(2001, time.March, 4),
		IsActive:    active,
		CategoryID:  categoryID,
	}
	require.NoError(t, f.db.Create(&book).Error)
	return book
}

// broken closes the database so every following query fails.
func (f fixture) broken(t *testing.T) {
	t.Helper()
	require.NoError(t, config.CloseDatabase(f.db))
}
