package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCollector struct {
	books, active, categories int64
	err                       error
}

func (f fakeCollector) CountBooks(context.Context) (int64, error)       { return f.books, f.err }
func (f fakeCollector) CountActiveBooks(context.Context) (int64, error) { return f.active, f.err }
func (f fakeCollector) CountCategories(context.Context) (int64, error)  { return f.categories, f.err }

func scrape(t *testing.T, oe *OTelExporter) string {
	t.Helper()

	w := httptest.NewRecorder()
	oe.ServeHTTP().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestOTelExporter_Gauges(t *testing.T) {
	oe, err := NewOTelExporter(fakeCollector{books: 8, active: 5, categories: 6})
	require.NoError(t, err)
	t.Cleanup(func() { _ = oe.Shutdown(context.Background()) })

	body := scrape(t, oe)

	assert.Regexp(t, regexp.MustCompile(`(?m)^catalog_books(\{[^}]*\})? 8$`), body)
	assert.Regexp(t, regexp.MustCompile(`(?m)^catalog_books_active(\{[^}]*\})? 5$`), body)
	assert.Regexp(t, regexp.MustCompile(`(?m)^catalog_categories(\{[^}]*\})? 6$`), body)
}

func TestOTelExporter_CollectorFailure(t *testing.T) {
	oe, err := NewOTelExporter(fakeCollector{err: errors.New("database is closed")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = oe.Shutdown(context.Background()) })

	body := scrape(t, oe)
	assert.NotRegexp(t, regexp.MustCompile(`(?m)^catalog_books(\{[^}]*\})? `), body)
}

func TestOTelExporter_Middleware(t *testing.T) {
	oe, err := NewOTelExporter(fakeCollector{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = oe.Shutdown(context.Background()) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(oe.Middleware())
	r.GET("/books/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for range 3 {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/books/1", nil))
	}

	body := scrape(t, oe)
	assert.Regexp(t, regexp.MustCompile(`(?m)^catalog_http_requests_total\{[^}]*http_route="/books/:id"[^}]*\} 3$`), body)
	assert.Contains(t, body, "catalog_http_request_duration_seconds_bucket")
}
