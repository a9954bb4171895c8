package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/controllers"
	"github.com/advisorhub/agentcrm/middleware"
)

// RegisterAgentRoutes registers the advisor profile and sharing routes.
func RegisterAgentRoutes(router *gin.Engine) {
	agentRoutes := router.Group("/api/agent")
	agentRoutes.Use(middleware.AuthMiddleware())

	agentRoutes.GET("/", controllers.GetAgentProfile)
	agentRoutes.PUT("/", controllers.UpdateAgentProfile)
	agentRoutes.GET("/share-card", controllers.GetShareCard)
	agentRoutes.POST("/invites", controllers.BuildInvites)
}
