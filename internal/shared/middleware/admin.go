package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared"
	"library-backend/internal/shared/response"
)

// AdminMiddleware yêu cầu role Admin (chạy sau AuthMiddleware)
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if role != shared.RoleAdmin {
			response.ErrorResponse(c, http.StatusForbidden, "Forbidden", "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
