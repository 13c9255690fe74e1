package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/bookcatalog/internal/apperror"
	"github.com/farellandr/bookcatalog/internal/handlers"
	"github.com/farellandr/bookcatalog/internal/middleware"
	"github.com/farellandr/bookcatalog/internal/models"
	"github.com/farellandr/bookcatalog/internal/repository"
	"github.com/farellandr/bookcatalog/internal/services/mocks"
	"github.com/farellandr/bookcatalog/internal/validation"
)

type openCatalog struct{}

func (openCatalog) TitleTaken(context.Context, string, uint) (bool, error) { return false, nil }
func (openCatalog) Exists(context.Context, uint) (bool, error)             { return true, nil }

func newRouter(books *mocks.BookUseCase, categories *mocks.CategoryUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.ServiceMiddleware(books, categories, validation.New(openCatalog{}, openCatalog{}, zerolog.Nop())))
	r.GET("/books", handlers.ListBooks)
	r.POST("/books", handlers.CreateBook)
	r.GET("/books/:id", handlers.GetBook)
	r.PUT("/books/:id", handlers.UpdateBook)
	r.DELETE("/books/:id", handlers.DeleteBook)
	r.GET("/categories/books", handlers.ListCategoriesWithBooks)
	r.GET("/categories/:id/books/active", handlers.ListActiveBooksByCategory)
	r.GET("/categories", handlers.ListCategories)
	r.POST("/categories", handlers.CreateCategory)
	r.DELETE("/categories/:id", handlers.DeleteCategory)
	return r
}

func serve(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestServiceFailuresBecomeServerErrors(t *testing.T) {
	internal := apperror.Internal(errors.New("connection reset"))

	tests := map[string]struct {
		method string
		path   string
		body   any
		setup  func(*mocks.BookUseCase, *mocks.CategoryUseCase)
	}{
		"list books": {http.MethodGet, "/books", nil, func(b *mocks.BookUseCase, _ *mocks.CategoryUseCase) {
			b.On("ListAllBooks", mock.Anything, 1).Return(repository.Page[models.Book]{}, internal)
		}},
		"show missing book": {http.MethodGet, "/books/7", nil, func(b *mocks.BookUseCase, _ *mocks.CategoryUseCase) {
			b.On("ShowBook", mock.Anything, uint(7)).Return(models.Book{}, apperror.NotFound("Book not found"))
		}},
		"delete book": {http.MethodDelete, "/books/3", nil, func(b *mocks.BookUseCase, _ *mocks.CategoryUseCase) {
			b.On("DeleteBook", mock.Anything, uint(3)).Return(false, internal)
		}},
		"active books of missing category": {http.MethodGet, "/categories/4/books/active", nil, func(b *mocks.BookUseCase, _ *mocks.CategoryUseCase) {
			b.On("ListActiveBooksByCategory", mock.Anything, uint(4)).Return(nil, apperror.NotFound("Category not found"))
		}},
		"categories with books": {http.MethodGet, "/categories/books", nil, func(b *mocks.BookUseCase, _ *mocks.CategoryUseCase) {
			b.On("ListAllCategoriesWithBooks", mock.Anything).Return(nil, internal)
		}},
		"list categories": {http.MethodGet, "/categories", nil, func(_ *mocks.BookUseCase, c *mocks.CategoryUseCase) {
			c.On("ListAllCategories", mock.Anything, 1).Return(repository.Page[models.Category]{}, internal)
		}},
		"create category": {http.MethodPost, "/categories", map[string]any{"name": "Poetry"}, func(_ *mocks.BookUseCase, c *mocks.CategoryUseCase) {
			c.On("CreateCategory", mock.Anything, models.Category{Name: "Poetry"}).Return(models.Category{}, internal)
		}},
		"delete category": {http.MethodDelete, "/categories/9", nil, func(_ *mocks.BookUseCase, c *mocks.CategoryUseCase) {
			c.On("DeleteCategory", mock.Anything, uint(9)).Return(false, apperror.NotFound("Category not found"))
		}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			books := mocks.NewBookUseCase(t)
			categories := mocks.NewCategoryUseCase(t)
			tt.setup(books, categories)

			w := serve(newRouter(books, categories), tt.method, tt.path, tt.body)

			require.Equal(t, http.StatusInternalServerError, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, apperror.ServerErrorMessage, body["message"])
			assert.Nil(t, body["data"])
		})
	}
}

func TestCreateBook_ValidationStopsBeforeService(t *testing.T) {
	books := mocks.NewBookUseCase(t)
	categories := mocks.NewCategoryUseCase(t)

	w := serve(newRouter(books, categories), http.MethodPost, "/books", map[string]any{"title": "abc"})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Equal(t, []any{
		"The book title must be at least 5 characters.",
		"The author name is required.",
		"The published date is required.",
		"The category is required.",
	}, body["data"])
	books.AssertNotCalled(t, "CreateBook", mock.Anything, mock.Anything)
}

func TestCreateBook_PassesNormalizedBook(t *testing.T) {
	books := mocks.NewBookUseCase(t)
	categories := mocks.NewCategoryUseCase(t)

	books.On("CreateBook", mock.Anything, mock.MatchedBy(func(b models.Book) bool {
		return b.Title == "Dune Messiah" && b.Author == "Frank Herbert" &&
			b.PublishedAt.String() == "1969-10-15" && b.IsActive && b.CategoryID == 2
	})).Return(func(_ context.Context, b models.Book) (models.Book, error) {
		b.ID = 11
		return b, nil
	})

	w := serve(newRouter(books, categories), http.MethodPost, "/books", map[string]any{
		"title":        "dune messiah",
		"author":       "frank herbert",
		"published_at": "1969-10-15",
		"category_id":  "2",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]any)
	assert.EqualValues(t, 11, data["id"])
	assert.Equal(t, true, data["is_active"])
}

func TestUpdateBook_MalformedID(t *testing.T) {
	books := mocks.NewBookUseCase(t)
	categories := mocks.NewCategoryUseCase(t)

	w := serve(newRouter(books, categories), http.MethodPut, "/books/abc", map[string]any{"author": "Someone"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	books.AssertNotCalled(t, "UpdateBook", mock.Anything, mock.Anything, mock.Anything)
}
