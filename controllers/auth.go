package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/models"
	"github.com/advisorhub/agentcrm/repository"
	"github.com/advisorhub/agentcrm/utils"
)

// Login signs the advisor in. Credential and OTP verification is stubbed:
// any well-formed request succeeds and gets a session token. Real
// authentication lives with an external identity provider.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "invalid request payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Email == "" && req.Mobile == "" {
		utils.HandleError(c, utils.CreateValidationError("email or mobile number is required"))
		return
	}

	agent := repository.AgentProfile().Get()

	token, err := utils.GenerateToken(agent)
	if err != nil {
		utils.ErrorResponse(c, "failed to issue session token", http.StatusInternalServerError)
		return
	}

	utils.Logger.Info().
		Str("email", req.Email).
		Str("mobile", req.Mobile).
		Msg("advisor signed in")

	utils.SuccessResponse(c, models.LoginResponse{
		Token: token,
		Agent: agent,
	}, "")
}
