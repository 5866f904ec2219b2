package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ParthVaghani-7/crickbase/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// AuthCookieName is the cookie set on login; the admin SPA relies on it.
	AuthCookieName = "auth-token"

	AuthAdminIDKey   = "auth_admin_id"
	AuthAdminRoleKey = "auth_admin_role"
	AuthSessionKey   = "auth_session_token"
)

// AuthMiddleware accepts the JWT either from the auth-token cookie or a
// Bearer header, then requires a live (unrevoked, unexpired) session row and
// an active admin account behind it.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := token.ValidateJWT(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		var session struct {
			Revoked   bool
			ExpiresAt time.Time
			Active    bool
			Role      string
		}
		err = db.Table("sessions").
			Select("sessions.revoked, sessions.expires_at, admins.active, admins.role").
			Joins("JOIN admins ON admins.id = sessions.admin_id").
			Where("sessions.token = ? AND sessions.deleted_at IS NULL", claims.SessionID).
			Scan(&session).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session lookup failed"})
			return
		}
		if session.ExpiresAt.IsZero() || session.Revoked || session.ExpiresAt.Before(time.Now()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}
		if !session.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin account is deactivated"})
			return
		}

		c.Set(AuthAdminIDKey, claims.AdminID)
		c.Set(AuthAdminRoleKey, session.Role)
		c.Set(AuthSessionKey, claims.SessionID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "bearer") {
		return ""
	}
	return bearerToken[1]
}

// GetAdminIDFromContext extracts the authenticated admin's ID from the Gin context.
func GetAdminIDFromContext(c *gin.Context) (uint, error) {
	adminID, exists := c.Get(AuthAdminIDKey)
	if !exists {
		return 0, errors.New("admin ID not found in context")
	}
	id, ok := adminID.(uint)
	if !ok {
		return 0, fmt.Errorf("admin ID has unexpected type: %T", adminID)
	}
	return id, nil
}

// GetAdminRoleFromContext extracts the authenticated admin's role from the Gin context.
func GetAdminRoleFromContext(c *gin.Context) (string, error) {
	role, exists := c.Get(AuthAdminRoleKey)
	if !exists {
		return "", errors.New("admin role not found in context")
	}
	r, ok := role.(string)
	if !ok {
		return "", fmt.Errorf("admin role has unexpected type: %T", role)
	}
	return r, nil
}
