package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/bookcatalog/internal/helpers"
	"github.com/farellandr/bookcatalog/internal/middleware"
	"github.com/farellandr/bookcatalog/internal/validation"
)

const (
	bookNotFound     = "Book not found"
	categoryNotFound = "Category not found"
)

func ListBooks(c *gin.Context) {
	page, err := middleware.GetBookService(c).ListAllBooks(c.Request.Context(), helpers.PageFromQuery(c))
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Books retrieved successfully", helpers.NewPagePayload(c, page))
}

func CreateBook(c *gin.Context) {
	var req validation.BookRequest
	if !bindBody(c, &req) {
		return
	}

	book, err := middleware.GetValidator(c).ValidateStoreBook(c.Request.Context(), req)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	created, err := middleware.GetBookService(c).CreateBook(c.Request.Context(), book)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusCreated, "Book created successfully", created)
}

func GetBook(c *gin.Context) {
	id, ok := pathID(c, bookNotFound)
	if !ok {
		return
	}

	book, err := middleware.GetBookService(c).ShowBook(c.Request.Context(), id)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Book retrieved successfully", book)
}

func UpdateBook(c *gin.Context) {
	id, ok := pathID(c, bookNotFound)
	if !ok {
		return
	}

	var req validation.BookRequest
	if !bindBody(c, &req) {
		return
	}

	changes, err := middleware.GetValidator(c).ValidateUpdateBook(c.Request.Context(), id, req)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	book, err := middleware.GetBookService(c).UpdateBook(c.Request.Context(), id, changes)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Book updated successfully", book)
}

func DeleteBook(c *gin.Context) {
	id, ok := pathID(c, bookNotFound)
	if !ok {
		return
	}

	if _, err := middleware.GetBookService(c).DeleteBook(c.Request.Context(), id); err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Book deleted successfully", nil)
}

func ListBooksByCategory(c *gin.Context) {
	id, ok := pathID(c, categoryNotFound)
	if !ok {
		return
	}

	books, err := middleware.GetBookService(c).ListBooksByACategory(c.Request.Context(), id)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "This category books:", books)
}

func ListActiveBooksByCategory(c *gin.Context) {
	id, ok := pathID(c, categoryNotFound)
	if !ok {
		return
	}

	books, err := middleware.GetBookService(c).ListActiveBooksByCategory(c.Request.Context(), id)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Active books retrieved successfully", books)
}

func ListCategoriesWithBooks(c *gin.Context) {
	categories, err := middleware.GetBookService(c).ListAllCategoriesWithBooks(c.Request.Context())
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Categories with books retrieved successfully", categories)
}
