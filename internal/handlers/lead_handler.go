package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// @Summary      List leads
// @Description  Filtered lead table. Search covers name, email, phone and tour interest.
// @Tags         Leads
// @Produce      json
// @Param        q        query     string  false  "search text"
// @Param        status   query     string  false  "lead status or all"
// @Param        channel  query     string  false  "channel or all"
// @Success      200      {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	var f repositories.LeadFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.Service.List(f))
}

// @Summary      Lead board
// @Description  One column per status, in pipeline order
// @Tags         Leads
// @Produce      json
// @Success      200  {array}  services.LeadColumn
// @Security     BearerAuth
// @Router       /leads/board [get]
func (h *LeadHandler) Board(c *gin.Context) {
	var f repositories.LeadFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.Service.Board(f))
}

// @Summary      Lead detail
// @Description  The lead, its bookings (matched by client name) and the statuses it can move to
// @Tags         Leads
// @Produce      json
// @Param        id   path      string  true  "lead id"
// @Success      200  {object}  services.LeadDetail
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetByID(c *gin.Context) {
	detail, err := h.Service.Detail(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary      Create lead
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        lead  body      models.Lead  true  "intake form"
// @Success      201   {object}  models.Lead
// @Failure      422   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var lead models.Lead
	if !bindJSON(c, &lead) {
		return
	}
	created, err := h.Service.Create(lead)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Update lead
// @Description  Only the fields present in the body change
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id     path      string            true  "lead id"
// @Param        patch  body      models.LeadPatch  true  "changed fields"
// @Success      200    {object}  models.Lead
// @Failure      404    {object}  ErrorResponse
// @Failure      422    {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /leads/{id} [patch]
func (h *LeadHandler) Update(c *gin.Context) {
	var patch models.LeadPatch
	if !bindJSON(c, &patch) {
		return
	}
	updated, err := h.Service.Update(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Change lead status
// @Description  Used by the status dropdown and by dragging a card on the board
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "lead id"
// @Param        status  body      StatusRequest  true  "new status"
// @Success      200     {object}  models.Lead
// @Security     BearerAuth
// @Router       /leads/{id}/status [put]
func (h *LeadHandler) ChangeStatus(c *gin.Context) {
	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	lead, err := h.Service.ChangeStatus(c.Param("id"), models.LeadStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// @Summary      Convert lead to booking
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "lead id"
// @Param        body  body      services.ConvertLeadRequest  true  "booking details"
// @Success      201   {object}  models.Booking
// @Failure      409   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /leads/{id}/convert [post]
func (h *LeadHandler) Convert(c *gin.Context) {
	var req services.ConvertLeadRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := h.Service.Convert(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}
