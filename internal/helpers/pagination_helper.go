package helpers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/bookcatalog/internal/repository"
)

type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type PagePayload[T any] struct {
	Items       []T       `json:"items"`
	CurrentPage int       `json:"current_page"`
	PerPage     int       `json:"per_page"`
	Total       int64     `json:"total"`
	LastPage    int       `json:"last_page"`
	From        *int      `json:"from"`
	To          *int      `json:"to"`
	Links       PageLinks `json:"links"`
}

// NewPagePayload describes page with links pointing back at the current route.
func NewPagePayload[T any](c *gin.Context, page repository.Page[T]) PagePayload[T] {
	items := page.Items
	if items == nil {
		items = []T{}
	}

	payload := PagePayload[T]{
		Items:       items,
		CurrentPage: page.CurrentPage,
		PerPage:     page.PerPage,
		Total:       page.Total,
		LastPage:    page.LastPage(),
	}

	if len(items) > 0 {
		from := (page.CurrentPage-1)*page.PerPage + 1
		to := from + len(items) - 1
		payload.From = &from
		payload.To = &to
	}

	payload.Links = PageLinks{
		First: pageURL(c, 1),
		Last:  pageURL(c, payload.LastPage),
	}
	if page.CurrentPage > 1 {
		prev := pageURL(c, page.CurrentPage-1)
		payload.Links.Prev = &prev
	}
	if page.CurrentPage < payload.LastPage {
		next := pageURL(c, page.CurrentPage+1)
		payload.Links.Next = &next
	}

	return payload
}

func pageURL(c *gin.Context, page int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s?page=%d", scheme, c.Request.Host, c.Request.URL.Path, page)
}
