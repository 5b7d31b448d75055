package shared

import (
	"github.com/siddur-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AdminID reads the authenticated admin id set by the auth middleware.
// Writes a 401 envelope and returns false when no identity is attached.
func AdminID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("admin_id")
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v > 0 {
			return uint(v), true
		}
	case float64:
		if v > 0 {
			return uint(v), true
		}
	}
	RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
	return 0, false
}
