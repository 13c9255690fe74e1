package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/bookcatalog/internal/apperror"
	"github.com/farellandr/bookcatalog/internal/helpers"
	"github.com/farellandr/bookcatalog/internal/validation"
)

// bindBody decodes a JSON object body. An empty body decodes to the zero
// request so that the validation rules report what is missing.
func bindBody(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		helpers.RespondAppError(c, validation.MalformedBody())
		return false
	}
	return true
}

// pathID reads the :id parameter. A malformed id is answered like a missing record.
func pathID(c *gin.Context, notFound string) (uint, bool) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondAppError(c, apperror.NotFound(notFound))
		return 0, false
	}
	return id, true
}
