package auction

import (
	"github.com/ParthVaghani-7/crickbase/config"
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/ParthVaghani-7/crickbase/internal/notification"
	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"github.com/ParthVaghani-7/crickbase/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuctionRoutes sets up auction registration, the admin auction console
// endpoints and the owner portal.
func AuctionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, notifier *notification.Service, jwtSecret string) {
	repo := NewAuctionRepository(db)
	tournamentRepo := tournament.NewTournamentRepository(db)
	controller := NewAuctionController(repo, tournamentRepo, notifier, appConfig)

	// Public routes: registration forms, pool listings, owner portal
	router.POST("/tournaments/:tournament_id/owner-registration", controller.RegisterOwner)
	router.POST("/tournaments/:tournament_id/player-registration", controller.RegisterPlayer)
	router.GET("/tournaments/:tournament_id/players", controller.GetPlayers)
	router.GET("/tournaments/:tournament_id/auction-teams", controller.GetTeams)
	router.GET("/owner-portal/:access_token", controller.OwnerDashboard)

	// Admin routes: the live auction console
	adminRoutes := router.Group("/admin/tournaments/:tournament_id")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.PATCH("/players/:player_id", controller.TransitionPlayer)
		adminRoutes.PUT("/auction-teams/:team_id/verify", controller.VerifyTeam)
	}
}
