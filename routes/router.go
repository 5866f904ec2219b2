package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/ParthVaghani-7/crickbase/config"
	"github.com/ParthVaghani-7/crickbase/internal/admin"
	"github.com/ParthVaghani-7/crickbase/internal/auction"
	"github.com/ParthVaghani-7/crickbase/internal/auth"
	"github.com/ParthVaghani-7/crickbase/internal/content"
	"github.com/ParthVaghani-7/crickbase/internal/match"
	"github.com/ParthVaghani-7/crickbase/internal/notification"
	"github.com/ParthVaghani-7/crickbase/internal/payment"
	"github.com/ParthVaghani-7/crickbase/internal/team"
	"github.com/ParthVaghani-7/crickbase/internal/tournament"
)

// SetupRoutes wires every feature's routes onto a fresh engine. The database
// handle and config are injected here and flow down into the repositories.
func SetupRoutes(db *gorm.DB, appConfig *config.Config, notifier *notification.Service) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.Static("/public", "./public")

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>CrickBase</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>CrickBase API 🏏</h1>
					<p><a href="/swagger/index.html">API documentation</a></p>
				</body>
			</html>
		`))
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	jwtSecret := appConfig.JWT.Secret

	auth.RegisterAuthRoutes(api.Group("/auth"), db, appConfig)
	admin.AdminRoutes(api, db, appConfig, jwtSecret)
	tournament.TournamentRoutes(api, db, appConfig, jwtSecret)
	team.TeamRoutes(api, db, appConfig, notifier, jwtSecret)
	auction.AuctionRoutes(api, db, appConfig, notifier, jwtSecret)
	match.MatchRoutes(api, db, jwtSecret)
	payment.PaymentRoutes(api, db, jwtSecret)
	content.ContentRoutes(api, db, appConfig, jwtSecret)

	return r
}
