package admin

import (
	"github.com/ParthVaghani-7/crickbase/config"
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/ParthVaghani-7/crickbase/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminRoutes sets up superadmin account-management routes.
func AdminRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	repo := NewAdminRepository(db)
	controller := NewAdminController(repo, appConfig)

	adminRoutes := router.Group("/admin/admins")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.SuperadminMiddleware())
	{
		adminRoutes.POST("", controller.CreateAdmin)
		adminRoutes.GET("", controller.GetAllAdmins)
		adminRoutes.PUT("/:admin_id", controller.UpdateAdmin)
	}
}
