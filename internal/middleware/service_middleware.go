package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/farellandr/bookcatalog/internal/services"
	"github.com/farellandr/bookcatalog/internal/validation"
)

const (
	bookServiceKey     = "book_service"
	categoryServiceKey = "category_service"
	validatorKey       = "validator"
)

func ServiceMiddleware(books services.BookUseCase, categories services.CategoryUseCase, v *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(bookServiceKey, books)
		c.Set(categoryServiceKey, categories)
		c.Set(validatorKey, v)
		c.Next()
	}
}

func GetBookService(c *gin.Context) services.BookUseCase {
	books, exists := c.Get(bookServiceKey)
	if !exists {
		return nil
	}
	return books.(services.BookUseCase)
}

func GetCategoryService(c *gin.Context) services.CategoryUseCase {
	categories, exists := c.Get(categoryServiceKey)
	if !exists {
		return nil
	}
	return categories.(services.CategoryUseCase)
}

func GetValidator(c *gin.Context) *validation.Validator {
	v, exists := c.Get(validatorKey)
	if !exists {
		return nil
	}
	return v.(*validation.Validator)
}
