package controllers

import (
	"errors"

	"github.com/payflow-dev/payflow/services"
	"github.com/payflow-dev/payflow/utils"

	"github.com/gin-gonic/gin"
)

// AuthController exposes the registration and login endpoints.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates the auth controller.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration failed - invalid request format: %v", err)
		utils.BadRequest(c, "Username and password are required")
		return
	}

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.LogError("Registration failed - invalid username: %s", req.Username)
		utils.BadRequest(c, msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.LogError("Registration failed - invalid password for username: %s", req.Username)
		utils.BadRequest(c, msg)
		return
	}

	user, err := ac.auth.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			utils.Conflict(c, "Username already taken")
			return
		}
		utils.LogError("Registration failed: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Created(c, user)
}

// Login handles POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login failed - invalid request format: %v", err)
		utils.BadRequest(c, "Username and password are required")
		return
	}

	token, err := ac.auth.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.NotFound(c, utils.ErrInvalidCredentials)
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.Unauthorized(c, utils.ErrInvalidCredentials)
		default:
			utils.LogError("Login failed: %v", err)
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, gin.H{"token": token})
}
