package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/services"
)

type TeamHandler struct {
	Service *services.TeamService
}

func NewTeamHandler(service *services.TeamService) *TeamHandler {
	return &TeamHandler{Service: service}
}

func (h *TeamHandler) List(c *gin.Context) {
	var f repositories.MemberFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.Service.List(f))
}

// @Summary      Invite team member
// @Tags         Team
// @Accept       json
// @Produce      json
// @Param        body  body      models.InviteRequest  true  "invitee"
// @Success      201   {object}  models.TeamMember
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /team/invite [post]
func (h *TeamHandler) Invite(c *gin.Context) {
	var req models.InviteRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.Service.Invite(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

type RoleRequest struct {
	Role models.Role `json:"role"`
}

func (h *TeamHandler) ChangeRole(c *gin.Context) {
	var req RoleRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.Service.ChangeRole(c.Param("id"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
