package team

import (
	"github.com/ParthVaghani-7/crickbase/config"
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/ParthVaghani-7/crickbase/internal/notification"
	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"github.com/ParthVaghani-7/crickbase/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up registration and roster routes.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, notifier *notification.Service, jwtSecret string) {
	repo := NewTeamRepository(db)
	tournamentRepo := tournament.NewTournamentRepository(db)
	controller := NewTeamController(repo, tournamentRepo, notifier, appConfig)

	// Public routes: the registration form and published rosters
	router.POST("/tournaments/:tournament_id/team-registration", controller.RegisterTeam)
	router.GET("/tournaments/:tournament_id/teams", controller.GetTeamsByTournament)
	router.GET("/teams/:team_id", controller.GetTeamByID)

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.GET("/tournaments/:tournament_id/registrations", controller.GetRegistrations)
		adminRoutes.PUT("/registrations/:registration_id/payment", controller.UpdatePaymentStatus)
		adminRoutes.PUT("/registrations/:registration_id/review/:action", controller.ReviewRegistration)
		adminRoutes.DELETE("/teams/:team_id", controller.DeleteTeam)
	}
}
