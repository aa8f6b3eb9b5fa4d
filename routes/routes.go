package routes

import (
	"github.com/payflow-dev/payflow/controllers"
	"github.com/payflow-dev/payflow/middleware"
	"github.com/payflow-dev/payflow/services"
	"github.com/payflow-dev/payflow/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes.
// The /auth group is the only unauthenticated prefix; everything under
// /payments requires a valid bearer token.
func SetupRouter(
	authController *controllers.AuthController,
	paymentController *controllers.PaymentController,
	tokens *services.TokenService,
) *gin.Engine {
	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/", controllers.Home)
	router.GET("/api", controllers.APIInfo)
	router.GET("/health", controllers.HealthCheck)

	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	payments := router.Group("/payments")
	payments.Use(middleware.AuthMiddleware(tokens))
	{
		payments.POST("", paymentController.Create)
		payments.GET("", paymentController.GetAll)
		payments.GET("/export", paymentController.Export)
		payments.GET("/:id", paymentController.GetByID)
		payments.GET("/:id/receipt", paymentController.Receipt)
		payments.GET("/user/:userId", paymentController.GetByUser)
		payments.POST("/:id/refund", paymentController.Refund)
	}

	return router
}
