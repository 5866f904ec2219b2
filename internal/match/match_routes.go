package match

import (
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/ParthVaghani-7/crickbase/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchRoutes sets up fixture routes.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewMatchRepository(db)
	controller := NewMatchController(repo)

	// Public routes
	router.GET("/tournaments/:tournament_id/matches", controller.GetMatches)
	router.GET("/tournaments/:tournament_id/matches/:match_id", controller.GetMatch)

	// Admin routes
	adminRoutes := router.Group("/admin/tournaments/:tournament_id/matches")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("", controller.CreateMatch)
		adminRoutes.PUT("/:match_id", controller.UpdateMatch)
		adminRoutes.DELETE("/:match_id", controller.DeleteMatch)
	}
}
