package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/farellandr/bookcatalog/internal/models"
	"github.com/farellandr/bookcatalog/internal/repository"
)

const (
	bookNotFound     = "Book not found"
	categoryNotFound = "Category not found"
)

type BookService struct {
	books      *repository.BookRepository
	categories *repository.CategoryRepository
	logger     zerolog.Logger
}

func NewBookService(books *repository.BookRepository, categories *repository.CategoryRepository, logger zerolog.Logger) *BookService {
	return &BookService{
		books:      books,
		categories: categories,
		logger:     logger.With().Str("service", "books").Logger(),
	}
}

func (s *BookService) ListAllBooks(ctx context.Context, page int) (repository.Page[models.Book], error) {
	result, err := s.books.Paginate(ctx, page, PerPage)
	if err != nil {
		return repository.Page[models.Book]{}, failure(s.logger, err, "failed to retrieve books")
	}
	return result, nil
}

func (s *BookService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if err := s.books.Create(ctx, &book); err != nil {
		return models.Book{}, failure(s.logger, err, "book creation failed")
	}
	return book, nil
}

func (s *BookService) ShowBook(ctx context.Context, id uint) (models.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return models.Book{}, lookupFailure(s.logger, err, bookNotFound, "failed to retrieve book")
	}
	return book, nil
}

// UpdateBook applies the non-zero fields of changes and returns the stored book.
func (s *BookService) UpdateBook(ctx context.Context, id uint, changes models.Book) (models.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return models.Book{}, lookupFailure(s.logger, err, bookNotFound, "failed to update book")
	}

	if err := s.books.Update(ctx, &book, changes); err != nil {
		return models.Book{}, failure(s.logger, err, "failed to update book")
	}

	updated, err := s.books.FindByID(ctx, id)
	if err != nil {
		return models.Book{}, failure(s.logger, err, "failed to reload book")
	}
	return updated, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id uint) (bool, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return false, lookupFailure(s.logger, err, bookNotFound, "failed to delete book")
	}

	if err := s.books.Delete(ctx, &book); err != nil {
		return false, failure(s.logger, err, "failed to delete book")
	}
	return true, nil
}

func (s *BookService) ListBooksByACategory(ctx context.Context, categoryID uint) ([]models.BookSummary, error) {
	return s.listByCategory(ctx, categoryID, false, "failed to retrieve books by category")
}

func (s *BookService) ListActiveBooksByCategory(ctx context.Context, categoryID uint) ([]models.BookSummary, error) {
	return s.listByCategory(ctx, categoryID, true, "failed to retrieve active books")
}

func (s *BookService) listByCategory(ctx context.Context, categoryID uint, activeOnly bool, msg string) ([]models.BookSummary, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, lookupFailure(s.logger, err, categoryNotFound, msg)
	}

	books, err := s.books.ListByCategory(ctx, categoryID, activeOnly)
	if err != nil {
		return nil, failure(s.logger, err, msg)
	}
	return books, nil
}

func (s *BookService) ListAllCategoriesWithBooks(ctx context.Context) ([]models.CategoryWithBooks, error) {
	categories, err := s.categories.ListWithBooks(ctx)
	if err != nil {
		return nil, failure(s.logger, err, "failed to retrieve categories with books")
	}
	return categories, nil
}
