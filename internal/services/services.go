// Package services holds the catalog use cases. Storage failures never leave
// this package unwrapped: a missing row becomes apperror.NotFound and anything
// else is logged and returned as apperror.Internal.
package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/farellandr/bookcatalog/internal/apperror"
	"github.com/farellandr/bookcatalog/internal/models"
	"github.com/farellandr/bookcatalog/internal/repository"
)

// PerPage is the page size of every paginated listing.
const PerPage = 5

//go:generate mockery --name BookUseCase --output mocks
type BookUseCase interface {
	ListAllBooks(ctx context.Context, page int) (repository.Page[models.Book], error)
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	ShowBook(ctx context.Context, id uint) (models.Book, error)
	UpdateBook(ctx context.Context, id uint, changes models.Book) (models.Book, error)
	DeleteBook(ctx context.Context, id uint) (bool, error)
	ListBooksByACategory(ctx context.Context, categoryID uint) ([]models.BookSummary, error)
	ListActiveBooksByCategory(ctx context.Context, categoryID uint) ([]models.BookSummary, error)
	ListAllCategoriesWithBooks(ctx context.Context) ([]models.CategoryWithBooks, error)
}

//go:generate mockery --name CategoryUseCase --output mocks
type CategoryUseCase interface {
	ListAllCategories(ctx context.Context, page int) (repository.Page[models.Category], error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	ShowCategory(ctx context.Context, id uint) (models.Category, error)
	UpdateCategory(ctx context.Context, id uint, changes models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id uint) (bool, error)
}

func failure(logger zerolog.Logger, err error, msg string) error {
	logger.Error().Err(err).Msg(msg)
	return apperror.Internal(err)
}

func lookupFailure(logger zerolog.Logger, err error, notFound, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(notFound)
	}
	return failure(logger, err, msg)
}
