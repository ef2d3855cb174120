package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warrantydesk/internal/shared/utils"
)

// RequireAdmin aborts the request unless the authenticated session carries the
// admin role. Mutating registry operations and full-list visibility sit behind
// this gate; the public warranty lookup does not.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole != string(RoleAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
