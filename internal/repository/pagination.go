package repository

import (
	"math"

	"gorm.io/gorm"
)

// Page is one page of an ordered listing.
type Page[T any] struct {
	Items       []T
	Total       int64
	CurrentPage int
	PerPage     int
}

// LastPage is never below 1, even for an empty listing.
func (p Page[T]) LastPage() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// PastEnd reports whether the page lies after the last page of the listing.
func (p Page[T]) PastEnd() bool {
	return p.CurrentPage > p.LastPage()
}

// paginate expects a normalized page and perPage.
func paginate(page, perPage int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset(page, perPage)).Limit(perPage)
	}
}

// offset saturates at math.MaxInt instead of wrapping.
func offset(page, perPage int) int {
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	return page, perPage
}
