package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pizza-shop/models"
	"pizza-shop/services"
)

// AuthMiddleware resolves the caller identity from a bearer access token
// before any protected handler runs. Failures short-circuit with 401.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		username, err := auth.ResolveIdentity(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
