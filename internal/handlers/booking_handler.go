package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// @Summary      List bookings
// @Tags         Bookings
// @Produce      json
// @Param        q       query  string  false  "search id, client, tour or pickup"
// @Param        status  query  string  false  "booking status or all"
// @Param        tour    query  string  false  "tour name or all"
// @Success      200     {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var f repositories.BookingFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.Service.List(f))
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	b, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":     b,
		"transitions": services.BookingTransitions(b.Status),
	})
}

// @Summary      Create booking
// @Description  Without a status the booking starts as Pending
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      models.Booking  true  "booking form"
// @Success      201      {object}  models.Booking
// @Failure      422      {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var b models.Booking
	if !bindJSON(c, &b) {
		return
	}
	created, err := h.Service.Create(b, models.EntryBookingsPage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var patch models.BookingPatch
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

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.ChangeStatus(c.Param("id"), models.BookingStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Download booking voucher
// @Tags         Bookings
// @Produce      application/pdf
// @Param        id  path  string  true  "booking id"
// @Success      200
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /bookings/{id}/voucher [get]
func (h *BookingHandler) Voucher(c *gin.Context) {
	path, err := h.Service.Voucher(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
