package payment

import (
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/ParthVaghani-7/crickbase/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaymentRoutes sets up payment-method configuration routes.
func PaymentRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewPaymentRepository(db)
	controller := NewPaymentController(repo)

	// Public route: registrants see only enabled methods
	router.GET("/tournaments/:tournament_id/payment-methods", controller.GetMethods)

	// Admin routes
	adminRoutes := router.Group("/admin/tournaments/:tournament_id/payment-methods")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.GET("", controller.GetAllMethods)
		adminRoutes.POST("", controller.CreateMethod)
		adminRoutes.PUT("/:method_id", controller.UpdateMethod)
		adminRoutes.DELETE("/:method_id", controller.DeleteMethod)
	}
}
