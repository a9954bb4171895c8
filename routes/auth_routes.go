package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/controllers"
)

// RegisterAuthRoutes registers the login route.
func RegisterAuthRoutes(router *gin.Engine) {
	authRoutes := router.Group("/api/auth")

	authRoutes.POST("/login", controllers.Login)
}
