package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/utils"
)

// AuthMiddleware validates the bearer token and stores the advisor claims on
// the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
				"code":    "MISSING_TOKEN",
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.Logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid token: " + err.Error(),
				"code":    "INVALID_TOKEN",
			})
			return
		}

		c.Set("advisor", claims)
		c.Next()
	}
}
