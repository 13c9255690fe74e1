package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/farellandr/bookcatalog/config"
	"github.com/farellandr/bookcatalog/internal/handlers"
	"github.com/farellandr/bookcatalog/internal/metrics"
	"github.com/farellandr/bookcatalog/internal/middleware"
	"github.com/farellandr/bookcatalog/internal/repository"
	"github.com/farellandr/bookcatalog/internal/seed"
	"github.com/farellandr/bookcatalog/internal/services"
	"github.com/farellandr/bookcatalog/internal/validation"
)

type RouterConfig struct {
	Books      services.BookUseCase
	Categories services.CategoryUseCase
	Validator  *validation.Validator
	Metrics    *metrics.OTelExporter // optional
	DB         *gorm.DB
	JWTSecret  string
	APIPrefix  string
}

// Start serves the catalog until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	gin.SetMode(cfg.HTTP.GinMode)

	db, err := config.InitDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer logFailure(logger, "failed to close database", func() error {
		return config.CloseDatabase(db)
	})

	if cfg.Seed.OnStart {
		if err := seedDefault(ctx, db, logger); err != nil {
			return err
		}
	}

	bookRepo := repository.NewBookRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	exporter, err := metrics.NewOTelExporter(repository.NewStats(db))
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	defer logFailure(logger, "failed to shut down metrics exporter", func() error {
		return exporter.Shutdown(context.Background())
	})

	router := NewRouter(RouterConfig{
		Books:      services.NewBookService(bookRepo, categoryRepo, logger),
		Categories: services.NewCategoryService(categoryRepo, logger),
		Validator:  validation.New(bookRepo, categoryRepo, logger),
		Metrics:    exporter,
		DB:         db,
		JWTSecret:  cfg.Auth.JWTSecret,
		APIPrefix:  cfg.HTTP.APIPrefix,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(cfg.HTTP.Port)),
		Handler:           httplog.RequestLogger(logger)(withCORS(cfg.HTTP.AllowedOrigins, router)),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errShutdown := make(chan error, 1)
	go shutdown(ctx, srv, cfg.Global.ShutdownTimeout, errShutdown)

	logger.Info().Str("addr", srv.Addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-errShutdown; err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

// logFailure runs a cleanup step whose error would otherwise be lost.
func logFailure(logger zerolog.Logger, msg string, cleanup func() error) {
	if err := cleanup(); err != nil {
		logger.Error().Err(err).Msg(msg)
	}
}

func withCORS(origins []string, next http.Handler) http.Handler {
	if len(origins) == 0 {
		return next
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})(next)
}

func shutdown(ctx context.Context, srv *http.Server, timeout time.Duration, errShutdown chan<- error) {
	<-ctx.Done()

	ctxTimeout, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctxTimeout); err != nil {
		errShutdown <- fmt.Errorf("forcing server close: %w", err)
		return
	}
	errShutdown <- nil
}

func seedDefault(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	fixture, err := seed.Default()
	if err != nil {
		return err
	}

	result, err := seed.Apply(ctx, db, fixture)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	if result.Skipped {
		logger.Info().Msg("catalog not empty, seeding skipped")
		return nil
	}
	logger.Info().Int("categories", result.Categories).Int("books", result.Books).Msg("catalog seeded")
	return nil
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(cfg.Metrics.ServeHTTP()))
	}

	r.GET("/health", middleware.DatabaseMiddleware(cfg.DB), handlers.Health)

	setupRoutes(r.Group("/"), cfg)
	if prefix := strings.TrimRight(cfg.APIPrefix, "/"); prefix != "" {
		setupRoutes(r.Group(prefix), cfg)
	}

	return r
}

func setupRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	rg.Use(
		middleware.ServiceMiddleware(cfg.Books, cfg.Categories, cfg.Validator),
		middleware.RequireTokenForWrites(cfg.JWTSecret),
	)

	books := rg.Group("/books")
	{
		books.GET("", handlers.ListBooks)
		books.POST("", handlers.CreateBook)
		books.GET("/:id", handlers.GetBook)
		books.PUT("/:id", handlers.UpdateBook)
		books.PATCH("/:id", handlers.UpdateBook)
		books.DELETE("/:id", handlers.DeleteBook)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("/books", handlers.ListCategoriesWithBooks)
		categories.GET("/:id/books", handlers.ListBooksByCategory)
		categories.GET("/:id/books/active", handlers.ListActiveBooksByCategory)

		categories.GET("", handlers.ListCategories)
		categories.POST("", handlers.CreateCategory)
		categories.GET("/:id", handlers.GetCategory)
		categories.PUT("/:id", handlers.UpdateCategory)
		categories.PATCH("/:id", handlers.UpdateCategory)
		categories.DELETE("/:id", handlers.DeleteCategory)
	}
}
