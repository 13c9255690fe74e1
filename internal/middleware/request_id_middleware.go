package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/go-chi/httplog"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID echoes the caller's request id, or a fresh one, and attaches it
// to the request log entry.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		httplog.LogEntrySetField(c.Request.Context(), "request_id", id)

		c.Next()
	}
}
