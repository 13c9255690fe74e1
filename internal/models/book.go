package models

import (
	"time"

	"gorm.io/gorm"
)

// Book has no column default for IsActive: gorm omits zero values on insert,
// so a default of true would turn every inactive book into an active one.
type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null;uniqueIndex" json:"title"`
	Author      string    `gorm:"size:150;not null" json:"author"`
	PublishedAt Date      `gorm:"not null" json:"published_at"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookSummary is the projection returned when listing the books of one category.
type BookSummary struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	IsActive bool   `json:"is_active"`
}

// CategoryBook is the projection nested under a category.
type CategoryBook struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	IsActive   bool   `json:"is_active"`
	CategoryID uint   `json:"category_id"`
}

// Active restricts a book query to available books.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
