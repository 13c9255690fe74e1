package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/bookcatalog/internal/apperror"
)

// ValidationFailedMessage heads every 422 response.
const ValidationFailedMessage = "An error occurred on the server"

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func RespondSuccess(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string, data any) {
	c.AbortWithStatusJSON(statusCode, Response{
		Success: false,
		Message: customMessage,
		Data:    data,
	})
}

// RespondAppError reports validation failures with their messages and
// everything else, a missing record included, as a generic server error.
func RespondAppError(c *gin.Context, err error) {
	if messages := apperror.Messages(err); messages != nil {
		RespondWithError(c, http.StatusUnprocessableEntity, ValidationFailedMessage, messages)
		return
	}
	_ = c.Error(err)
	RespondWithError(c, http.StatusInternalServerError, apperror.ServerErrorMessage, nil)
}
