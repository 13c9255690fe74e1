package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/farellandr/bookcatalog/internal/models"
)

// BookRepository handles all book queries. Errors are returned as gorm
// produces them; gorm.ErrRecordNotFound signals a missing row.
type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Paginate lists books ordered by id with their category attached.
func (r *BookRepository) Paginate(ctx context.Context, page, perPage int) (Page[models.Book], error) {
	page, perPage = normalizePage(page, perPage)
	result := Page[models.Book]{CurrentPage: page, PerPage: perPage}

	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&result.Total).Error; err != nil {
		return result, err
	}

	books := make([]models.Book, 0, perPage)
	if result.PastEnd() {
		result.Items = books
		return result, nil
	}

	err := r.db.WithContext(ctx).Preload("Category").Scopes(paginate(page, perPage)).Order("id ASC").Find(&books).Error
	if err != nil {
		return result, err
	}
	result.Items = books

	return result, nil
}

// FindByID retrieves a book with its category.
func (r *BookRepository) FindByID(ctx context.Context, id uint) (models.Book, error) {
	var book models.Book
	err := r.db.WithContext(ctx).Preload("Category").First(&book, id).Error
	return book, err
}

func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// Update writes the non-zero fields of changes onto book. Zero values
// (empty strings, false, a zero date or category) are skipped by gorm.
func (r *BookRepository) Update(ctx context.Context, book *models.Book, changes models.Book) error {
	return r.db.WithContext(ctx).Model(book).Omit(clause.Associations).Updates(changes).Error
}

func (r *BookRepository) Delete(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Delete(book).Error
}

// TitleTaken reports whether another book already uses title.
// exceptID excludes one book, zero excludes none.
func (r *BookRepository) TitleTaken(ctx context.Context, title string, exceptID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Book{}).Where("title = ?", title)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByCategory returns the summaries of a category's books, optionally
// only the active ones.
func (r *BookRepository) ListByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]models.BookSummary, error) {
	query := r.db.WithContext(ctx).Model(&models.Book{}).
		Select("id", "title", "author", "is_active").
		Where("category_id = ?", categoryID)
	if activeOnly {
		query = query.Scopes(models.Active)
	}

	summaries := make([]models.BookSummary, 0)
	if err := query.Order("id ASC").Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}
