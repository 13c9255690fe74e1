package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseID reads a positive numeric identifier.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// PageFromQuery returns the requested page, falling back to 1 for missing,
// malformed or non-positive values.
func PageFromQuery(c *gin.Context) int {
	page, err := StringToInt(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
