package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/models"
	"tourcrm/internal/services"
)

type BillingHandler struct {
	Service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{Service: service}
}

func (h *BillingHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Plans())
}

// @Summary      Start plan checkout
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Param        body  body      models.CheckoutRequest  true  "plan"
// @Success      200   {object}  models.CheckoutIntent
// @Failure      502   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /billing/checkout [post]
func (h *BillingHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}
	intent, err := h.Service.Checkout(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}
