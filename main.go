package main

import (
	"log"

	"github.com/payflow-dev/payflow/config"
	"github.com/payflow-dev/payflow/controllers"
	"github.com/payflow-dev/payflow/repository"
	"github.com/payflow-dev/payflow/routes"
	"github.com/payflow-dev/payflow/services"
	"github.com/payflow-dev/payflow/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	if err := config.InitDB(cfg); err != nil {
		utils.LogError("Error initializing database: %v", err)
		log.Fatal("Error initializing database:", err)
	}

	// Wire repositories, services, and controllers
	userRepo := repository.NewUserRepository(config.DB)
	paymentRepo := repository.NewPaymentRepository(config.DB)

	tokens := services.NewTokenService(cfg.JWTSecret, utils.JWTExpiration)
	authService := services.NewAuthService(userRepo, tokens)
	paymentService := services.NewPaymentService(paymentRepo, services.NewRandomOutcomeDecider())

	authController := controllers.NewAuthController(authService)
	paymentController := controllers.NewPaymentController(paymentService)

	// Set up router
	router := routes.SetupRouter(authController, paymentController, tokens)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
