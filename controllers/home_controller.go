package controllers

import (
	"github.com/payflow-dev/payflow/utils"

	"github.com/gin-gonic/gin"
)

// Home handles GET / with basic service information.
func Home(c *gin.Context) {
	utils.Success(c, gin.H{
		"application": utils.AppName,
		"version":     utils.AppVersion,
		"status":      "Running",
	})
}

// APIInfo handles GET /api with the endpoint directory.
func APIInfo(c *gin.Context) {
	utils.Success(c, gin.H{
		"application": utils.AppName,
		"version":     utils.AppVersion,
		"status":      "Running",
		"endpoints": gin.H{
			"Register":             "POST /auth/register",
			"Login":                "POST /auth/login",
			"Create Payment":       "POST /payments",
			"Get All Payments":     "GET /payments",
			"Get Payment by ID":    "GET /payments/{id}",
			"Get Payments by User": "GET /payments/user/{userId}",
			"Refund Payment":       "POST /payments/{id}/refund",
			"Payment Receipt":      "GET /payments/{id}/receipt",
			"Export Payments":      "GET /payments/export",
		},
		"security": gin.H{
			"Password Encryption": "BCrypt",
			"Authentication":      "JWT",
			"Session":             "Stateless",
		},
	})
}

// HealthCheck handles GET /health.
func HealthCheck(c *gin.Context) {
	utils.Success(c, gin.H{"status": "ok"})
}
