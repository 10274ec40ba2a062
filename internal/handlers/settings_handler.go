package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/models"
	"tourcrm/internal/services"
)

type SettingsHandler struct {
	Service *services.SettingsService
}

func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: service}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"settings": h.Service.Get(),
		"options":  h.Service.Options(),
	})
}

// @Summary      Save workspace settings
// @Tags         Workspace
// @Accept       json
// @Produce      json
// @Param        body  body      models.WorkspaceSettings  true  "settings form"
// @Success      200   {object}  models.WorkspaceSettings
// @Failure      422   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /settings [put]
func (h *SettingsHandler) Save(c *gin.Context) {
	var form models.WorkspaceSettings
	if !bindJSON(c, &form) {
		return
	}
	saved, err := h.Service.Save(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// @Summary      Complete onboarding
// @Tags         Workspace
// @Accept       json
// @Produce      json
// @Param        body  body      models.WorkspaceSettings  true  "onboarding form"
// @Success      200   {object}  NavigationResponse
// @Security     BearerAuth
// @Router       /onboarding [post]
func (h *SettingsHandler) CompleteOnboarding(c *gin.Context) {
	var form models.WorkspaceSettings
	if !bindJSON(c, &form) {
		return
	}
	saved, next, err := h.Service.CompleteOnboarding(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NavigationResponse{Next: next, Data: saved})
}
