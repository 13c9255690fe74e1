package models

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Books     []Book    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryWithBooks is the nested listing of a category and its books.
type CategoryWithBooks struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Books []CategoryBook `json:"books"`
}

func NewCategoryWithBooks(category Category) CategoryWithBooks {
	books := make([]CategoryBook, 0, len(category.Books))
	for _, book := range category.Books {
		books = append(books, CategoryBook{
			ID:         book.ID,
			Title:      book.Title,
			Author:     book.Author,
			IsActive:   book.IsActive,
			CategoryID: book.CategoryID,
		})
	}

	return CategoryWithBooks{
		ID:    category.ID,
		Name:  category.Name,
		Books: books,
	}
}
