package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/services"
)

type NotificationHandler struct {
	Feed *services.ToastFeed
}

func NewNotificationHandler(feed *services.ToastFeed) *NotificationHandler {
	return &NotificationHandler{Feed: feed}
}

func (h *NotificationHandler) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, h.Feed.Recent())
}
