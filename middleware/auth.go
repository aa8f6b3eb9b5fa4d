package middleware

import (
	"strings"

	"github.com/payflow-dev/payflow/services"
	"github.com/payflow-dev/payflow/utils"

	"github.com/gin-gonic/gin"
)

// UsernameKey is the context key under which the authenticated
// username is stored.
const UsernameKey = "username"

// AuthMiddleware validates the bearer token on protected routes and
// attaches the authenticated username to the request context. Any
// validation failure ends the request with a 401 envelope.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header for %s", c.Request.URL.Path)
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.LogError("Malformed Authorization header for %s", c.Request.URL.Path)
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		username, err := tokens.Validate(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(UsernameKey, username)
		utils.LogDebug("Authenticated request for user %s", username)
		c.Next()
	}
}
