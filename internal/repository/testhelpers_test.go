package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/farellandr/bookcatalog/config"
	"github.com/farellandr/bookcatalog/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.InitDatabase(config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = config.CloseDatabase(db)
	})
	return db
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createBook(t *testing.T, db *gorm.DB, title string, categoryID uint, active bool) models.Book {
	t.Helper()

	book := models.Book{
		Title:       title,
		Author:      "Some Author",
		PublishedAt: models.NewDate(2020, time.January, 1),
		IsActive:    active,
		CategoryID:  categoryID,
	}
	require.NoError(t, db.Create(&book).Error)
	return book
}
