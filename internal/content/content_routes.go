package content

import (
	"github.com/ParthVaghani-7/crickbase/config"
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/ParthVaghani-7/crickbase/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContentRoutes sets up landing-page CMS, upload and image-proxy routes.
func ContentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	repo := NewContentRepository(db)
	controller := NewContentController(repo, appConfig)

	// Public routes
	router.GET("/content/landing", controller.GetLanding)
	router.GET("/images/proxy", controller.ProxyImage)

	// Admin routes
	adminRoutes := router.Group("/admin/content")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.GET("/sections", controller.GetSections)
		adminRoutes.PUT("/sections", controller.UpsertSection)
		adminRoutes.DELETE("/sections/:section_id", controller.DeleteSection)

		adminRoutes.GET("/people", controller.GetPeople)
		adminRoutes.POST("/people", controller.CreatePerson)
		adminRoutes.PUT("/people/:person_id", controller.UpdatePerson)
		adminRoutes.DELETE("/people/:person_id", controller.DeletePerson)

		adminRoutes.GET("/images", controller.GetImages)
		adminRoutes.POST("/images", controller.UploadImage)
	}
}
