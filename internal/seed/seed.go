// Package seed loads a YAML fixture of categories and books into an empty catalog.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/farellandr/bookcatalog/internal/models"
)

//go:embed seed.yaml
var defaultFixture []byte

// Fixture represents the structure of a seed file
type Fixture struct {
	Categories []CategoryFixture `yaml:"categories"`
}

type CategoryFixture struct {
	Name  string        `yaml:"name"`
	Books []BookFixture `yaml:"books"`
}

type BookFixture struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	PublishedAt string `yaml:"published_at"`
	IsActive    *bool  `yaml:"is_active"` // Default: true
}

// Result tells what Apply inserted.
type Result struct {
	Categories int
	Books      int
	Skipped    bool
}

// Default returns the fixture bundled with the binary.
func Default() (Fixture, error) {
	return Parse(defaultFixture)
}

func Load(filePath string) (Fixture, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Fixture{}, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Fixture, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("parsing seed YAML: %w", err)
	}

	for _, category := range fixture.Categories {
		if strings.TrimSpace(category.Name) == "" {
			return Fixture{}, fmt.Errorf("validating seed: category without a name")
		}
		for _, book := range category.Books {
			if strings.TrimSpace(book.Title) == "" {
				return Fixture{}, fmt.Errorf("validating seed: book without a title in %q", category.Name)
			}
			if _, err := models.ParseDate(book.PublishedAt); err != nil {
				return Fixture{}, fmt.Errorf("validating seed: book %q: %w", book.Title, err)
			}
		}
	}

	return fixture, nil
}

// Apply inserts fixture in one transaction. A catalog that already holds
// categories is left untouched.
func Apply(ctx context.Context, db *gorm.DB, fixture Fixture) (Result, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&existing).Error; err != nil {
		return Result{}, fmt.Errorf("counting categories: %w", err)
	}
	if existing > 0 {
		return Result{Skipped: true}, nil
	}

	var result Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, cf := range fixture.Categories {
			category := models.Category{Name: strings.TrimSpace(cf.Name)}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("inserting category %q: %w", category.Name, err)
			}
			result.Categories++

			for _, bf := range cf.Books {
				book, err := bf.book(category.ID)
				if err != nil {
					return err
				}
				if err := tx.Create(&book).Error; err != nil {
					return fmt.Errorf("inserting book %q: %w", book.Title, err)
				}
				result.Books++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

func (bf BookFixture) book(categoryID uint) (models.Book, error) {
	publishedAt, err := models.ParseDate(bf.PublishedAt)
	if err != nil {
		return models.Book{}, fmt.Errorf("book %q: %w", bf.Title, err)
	}

	active := true
	if bf.IsActive != nil {
		active = *bf.IsActive
	}

	return models.Book{
		Title:       bf.Title,
		Author:      bf.Author,
		PublishedAt: publishedAt,
		IsActive:    active,
		CategoryID:  categoryID,
	}, nil
}
