package tournament

import (
	"github.com/ParthVaghani-7/crickbase/config"
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/ParthVaghani-7/crickbase/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TournamentRoutes sets up all tournament-related routes
func TournamentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	repo := NewTournamentRepository(db)
	controller := NewTournamentController(repo, appConfig)

	// Public routes
	router.GET("/tournaments", controller.GetAllTournaments)
	router.GET("/tournaments/:tournament_id", controller.GetTournament)

	// Admin routes
	adminRoutes := router.Group("/admin/tournaments")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("", controller.CreateTournament)
		adminRoutes.PUT("/:tournament_id", controller.UpdateTournament)
		adminRoutes.DELETE("/:tournament_id", controller.DeleteTournament)
	}
}
