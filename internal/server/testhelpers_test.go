package server_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/farellandr/bookcatalog/config"
	"github.com/farellandr/bookcatalog/internal/models"
	"github.com/farellandr/bookcatalog/internal/repository"
	"github.com/farellandr/bookcatalog/internal/server"
	"github.com/farellandr/bookcatalog/internal/services"
	"github.com/farellandr/bookcatalog/internal/validation"
)

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	logs   *bytes.Buffer
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, jwtSecret string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.InitDatabase(config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDatabase(db) })

	bookRepo := repository.NewBookRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	logs := &bytes.Buffer{}
	logger := zerolog.New(logs)

	router := server.NewRouter(server.RouterConfig{
		Books:      services.NewBookService(bookRepo, categoryRepo, logger),
		Categories: services.NewCategoryService(categoryRepo, logger),
		Validator:  validation.New(bookRepo, categoryRepo, logger),
		DB:         db,
		JWTSecret:  jwtSecret,
		APIPrefix:  "/api",
	})

	return &testServer{t: t, db: db, router: router, logs: logs}
}

func (s *testServer) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) category(name string) models.Category {
	s.t.Helper()

	category := models.Category{Name: name}
	require.NoError(s.t, s.db.Create(&category).Error)
	return category
}

func (s *testServer) book(title string, categoryID uint, active bool) models.Book {
	s.t.Helper()

	book := models.Book{
		Title:       title,
		Author:      "Jane Doe",
		PublishedAt: models.NewDate(2010, time.May, 5),
		IsActive:    active,
		CategoryID:  categoryID,
	}
	require.NoError(s.t, s.db.Create(&book).Error)
	return book
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data), w.Body.String())
	return data
}

func messages(t *testing.T, w *httptest.ResponseRecorder) []string {
	return decodeData[[]string](t, w)
}
