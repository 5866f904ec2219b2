package auth

import (
	"github.com/ParthVaghani-7/crickbase/config"
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes sets up login/verify/logout under /auth.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	router.POST("/login", controller.Login)

	authed := router.Group("/")
	authed.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authed.GET("/verify", controller.Verify)
		authed.POST("/logout", controller.Logout)
	}
}
