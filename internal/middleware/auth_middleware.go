package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/bookcatalog/internal/auth"
	"github.com/farellandr/bookcatalog/internal/helpers"
)

// RequireTokenForWrites rejects POST, PUT, PATCH and DELETE requests that do
// not carry a valid bearer token. Reads are never guarded, and an empty
// secret disables the check.
func RequireTokenForWrites(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" || isRead(c.Request.Method) {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authorization token required.", nil)
			return
		}

		claims, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.", nil)
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}

func isRead(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
