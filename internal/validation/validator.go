// Package validation normalizes and validates catalog payloads using the validator/v10 library.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/farellandr/bookcatalog/internal/apperror"
	"github.com/farellandr/bookcatalog/internal/models"
)

// MalformedBodyMessage is reported when the request body is not a JSON object.
const MalformedBodyMessage = "The request body must be a JSON object."

var firstPrintedBook = time.Date(1454, time.January, 1, 0, 0, 0, 0, time.UTC)

// TitleChecker reports whether a title is used by a book other than exceptID.
type TitleChecker interface {
	TitleTaken(ctx context.Context, title string, exceptID uint) (bool, error)
}

type CategoryChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// BookRequest is the raw book payload. Fields stay untyped until normalized.
type BookRequest struct {
	Title       any `json:"title"`
	Author      any `json:"author"`
	PublishedAt any `json:"published_at"`
	IsActive    any `json:"is_active"`
	CategoryID  any `json:"category_id"`
}

type CategoryRequest struct {
	Name any `json:"name"`
}

type bookFields struct {
	Title       string
	Author      string
	PublishedAt string
	CategoryID  string
}

type storeBookRules struct {
	Title       string `label:"book title" validate:"required,min=5,max=200,title_unique"`
	Author      string `label:"author name" validate:"required,min=3,max=150"`
	PublishedAt string `label:"published date" validate:"required,datetime=2006-01-02,not_future,after_first_print"`
	CategoryID  string `label:"category" validate:"required,number,category_exists"`
}

type updateBookRules struct {
	Title       string `label:"book title" validate:"omitempty,min=5,max=200,title_unique"`
	Author      string `label:"author name" validate:"omitempty,min=3,max=150"`
	PublishedAt string `label:"published date" validate:"omitempty,datetime=2006-01-02,not_future,after_first_print"`
	CategoryID  string `label:"category" validate:"omitempty,number,category_exists"`
}

type storeCategoryRules struct {
	Name string `label:"category name" validate:"required,min=3,max=100"`
}

type updateCategoryRules struct {
	Name string `label:"category name" validate:"omitempty,min=3,max=100"`
}

// lookup carries per-call state to the database backed rules.
type lookup struct {
	exceptID uint
	err      error
}

type lookupKey struct{}

// Validator wraps go-playground/validator with the catalog rules and messages.
type Validator struct {
	v          *validator.Validate
	books      TitleChecker
	categories CategoryChecker
	logger     zerolog.Logger
	now        func() time.Time
}

func New(books TitleChecker, categories CategoryChecker, logger zerolog.Logger) *Validator {
	val := &Validator{
		v:          validator.New(validator.WithRequiredStructEnabled()),
		books:      books,
		categories: categories,
		logger:     logger,
		now:        time.Now,
	}

	// Error messages use the human readable label of a field
	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	_ = val.v.RegisterValidationCtx("title_unique", val.titleUnique)
	_ = val.v.RegisterValidationCtx("category_exists", val.categoryExists)
	_ = val.v.RegisterValidation("not_future", val.notFuture)
	_ = val.v.RegisterValidation("after_first_print", afterFirstPrint)

	return val
}

// ValidateStoreBook normalizes a new book. A missing or unreadable is_active means true.
func (v *Validator) ValidateStoreBook(ctx context.Context, req BookRequest) (models.Book, error) {
	fields := normalizeBook(req)
	if err := v.check(ctx, 0, storeBookRules(fields)); err != nil {
		return models.Book{}, err
	}

	book := fields.book()
	book.IsActive = true
	if active, ok := parseBool(req.IsActive); ok {
		book.IsActive = active
	}
	return book, nil
}

// ValidateUpdateBook returns only the fields present in req. Title uniqueness
// ignores the book being updated.
func (v *Validator) ValidateUpdateBook(ctx context.Context, id uint, req BookRequest) (models.Book, error) {
	fields := normalizeBook(req)
	if err := v.check(ctx, id, updateBookRules(fields)); err != nil {
		return models.Book{}, err
	}

	book := fields.book()
	if active, ok := parseBool(req.IsActive); ok {
		book.IsActive = active
	}
	return book, nil
}

func (v *Validator) ValidateStoreCategory(ctx context.Context, req CategoryRequest) (models.Category, error) {
	rules := storeCategoryRules{Name: normalizeName(req.Name)}
	if err := v.check(ctx, 0, rules); err != nil {
		return models.Category{}, err
	}
	return models.Category{Name: rules.Name}, nil
}

func (v *Validator) ValidateUpdateCategory(ctx context.Context, req CategoryRequest) (models.Category, error) {
	rules := updateCategoryRules{Name: normalizeName(req.Name)}
	if err := v.check(ctx, 0, rules); err != nil {
		return models.Category{}, err
	}
	return models.Category{Name: rules.Name}, nil
}

// MalformedBody is the error for a body that could not be decoded.
func MalformedBody() error {
	return apperror.Validation([]string{MalformedBodyMessage})
}

func (v *Validator) check(ctx context.Context, exceptID uint, rules any) error {
	state := &lookup{exceptID: exceptID}
	err := v.v.StructCtx(context.WithValue(ctx, lookupKey{}, state), rules)
	if state.err != nil {
		v.logger.Error().Err(state.err).Msg("failed to look up catalog records during validation")
		return apperror.Internal(state.err)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		v.logger.Error().Err(err).Msg("failed to validate payload")
		return apperror.Internal(err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, message(e))
	}
	return apperror.Validation(messages)
}

func stateFrom(ctx context.Context) *lookup {
	if state, ok := ctx.Value(lookupKey{}).(*lookup); ok {
		return state
	}
	return &lookup{}
}

// titleUnique and categoryExists record lookup failures instead of failing the
// field, so a broken database is reported as a server error.
func (v *Validator) titleUnique(ctx context.Context, fl validator.FieldLevel) bool {
	state := stateFrom(ctx)
	taken, err := v.books.TitleTaken(ctx, fl.Field().String(), state.exceptID)
	if err != nil {
		state.err = err
		return true
	}
	return !taken
}

func (v *Validator) categoryExists(ctx context.Context, fl validator.FieldLevel) bool {
	id, err := strconv.ParseUint(fl.Field().String(), 10, 64)
	if err != nil {
		return false
	}

	exists, err := v.categories.Exists(ctx, uint(id))
	if err != nil {
		stateFrom(ctx).err = err
		return true
	}
	return exists
}

func (v *Validator) notFuture(fl validator.FieldLevel) bool {
	date, err := models.ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	y, m, d := v.now().UTC().Date()
	return !date.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func afterFirstPrint(fl validator.FieldLevel) bool {
	date, err := models.ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return !date.Before(firstPrintedBook)
}

func message(e validator.FieldError) string {
	attribute := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s is required.", attribute)
	case "title_unique":
		return fmt.Sprintf("This %s has already been taken.", attribute)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", attribute, e.Param())
	case "max":
		return fmt.Sprintf("The %s cannot exceed %s characters.", attribute, e.Param())
	case "category_exists":
		return fmt.Sprintf("The selected %s does not exist.", attribute)
	case "datetime":
		return fmt.Sprintf("The %s must be in the format YYYY-MM-DD.", attribute)
	case "number":
		return fmt.Sprintf("The %s must be an integer.", attribute)
	case "not_future":
		return fmt.Sprintf("The %s cannot be a future date.", attribute)
	case "after_first_print":
		return fmt.Sprintf("The %s must be after January 1, 1454, the year the first book was published.", attribute)
	default:
		return fmt.Sprintf("The %s is invalid.", attribute)
	}
}

func normalizeBook(req BookRequest) bookFields {
	return bookFields{
		Title:       normalizeText(req.Title),
		Author:      normalizeText(req.Author),
		PublishedAt: normalizeDate(req.PublishedAt),
		CategoryID:  normalizeID(req.CategoryID),
	}
}

func normalizeName(v any) string {
	return strings.TrimSpace(stringValue(v))
}

func (f bookFields) book() models.Book {
	book := models.Book{Title: f.Title, Author: f.Author}
	if f.PublishedAt != "" {
		book.PublishedAt, _ = models.ParseDate(f.PublishedAt)
	}
	if f.CategoryID != "" {
		id, _ := strconv.ParseUint(f.CategoryID, 10, 64)
		book.CategoryID = uint(id)
	}
	return book
}
