package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RoleMiddleware gates a route group to admins holding one of the required
// roles. Must run after middleware.AuthMiddleware, which loads the role from
// the session row.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := middleware.GetAdminRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		for _, required := range requiredRoles {
			if strings.EqualFold(role, required) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":    "Forbidden",
			"message":  "You don't have permission to access this resource",
			"required": requiredRoles,
		})
	}
}

// SuperadminMiddleware is a convenience middleware for superadmin-only access
func SuperadminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("SUPERADMIN")
}

// AdminMiddleware allows any back-office role
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("ADMIN", "SUPERADMIN")
}
