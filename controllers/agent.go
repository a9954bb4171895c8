package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/models"
	"github.com/advisorhub/agentcrm/repository"
	"github.com/advisorhub/agentcrm/service"
	"github.com/advisorhub/agentcrm/utils"
)

// GetAgentProfile returns the advisor's digital-card profile.
func GetAgentProfile(c *gin.Context) {
	utils.SuccessResponse(c, repository.AgentProfile().Get(), "")
}

// UpdateAgentProfile patches the advisor profile; empty fields keep their
// current value.
func UpdateAgentProfile(c *gin.Context) {
	var req models.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "invalid request payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	store := repository.AgentProfile()
	agent := store.Get()

	if req.Name != "" {
		agent.Name = req.Name
	}
	if req.Title != "" {
		agent.Title = req.Title
	}
	if req.Phone != "" {
		agent.Phone = req.Phone
	}
	if req.Email != "" {
		agent.Email = req.Email
	}
	if req.PhotoURL != "" {
		agent.PhotoURL = req.PhotoURL
	}

	store.Update(agent)
	utils.SuccessResponse(c, agent, "profile updated")
}

// GetShareCard prepares the "share my card" message and WhatsApp link. The
// client opens the link; nothing is sent from here.
func GetShareCard(c *gin.Context) {
	agent := repository.AgentProfile().Get()
	utils.SuccessResponse(c, service.BuildCardShare(agent), "")
}

// BuildInvites prepares personalized invite messages for the selected
// contacts.
func BuildInvites(c *gin.Context) {
	var req models.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "invalid request payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	agent := repository.AgentProfile().Get()
	invites := service.BuildInvites(agent, req.Contacts)

	utils.Logger.Info().Int("contacts", len(invites)).Msg("invite messages prepared")
	utils.SuccessResponse(c, gin.H{"invites": invites}, "")
}
