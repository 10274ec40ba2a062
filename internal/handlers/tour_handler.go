package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/services"
)

type TourHandler struct {
	Service *services.TourService
}

func NewTourHandler(service *services.TourService) *TourHandler {
	return &TourHandler{Service: service}
}

func (h *TourHandler) List(c *gin.Context) {
	var f repositories.TourFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.Service.List(f))
}

func (h *TourHandler) GetByID(c *gin.Context) {
	t, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TourHandler) Create(c *gin.Context) {
	var t models.Tour
	if !bindJSON(c, &t) {
		return
	}
	created, err := h.Service.Create(t)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update never touches analytics; they are not part of TourPatch.
func (h *TourHandler) Update(c *gin.Context) {
	var patch models.TourPatch
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

type ActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// @Summary      Activate or deactivate a tour
// @Tags         Tours
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "tour id"
// @Param        body  body      ActiveRequest  true  "active flag"
// @Success      200   {object}  models.Tour
// @Failure      404   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /tours/{id}/active [put]
func (h *TourHandler) SetActive(c *gin.Context) {
	var req ActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := h.Service.SetActive(c.Param("id"), *req.Active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}
