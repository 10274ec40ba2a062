package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/services"
)

type InboxHandler struct {
	Service *services.InboxService
}

func NewInboxHandler(service *services.InboxService) *InboxHandler {
	return &InboxHandler{Service: service}
}

func (h *InboxHandler) List(c *gin.Context) {
	var f repositories.ConversationFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"conversations": h.Service.List(f),
		"unread_total":  h.Service.UnreadTotal(),
	})
}

// Open selects the thread and marks it read.
func (h *InboxHandler) Open(c *gin.Context) {
	conv, err := h.Service.Open(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *InboxHandler) Selected(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Selected())
}

func (h *InboxHandler) Close(c *gin.Context) {
	h.Service.Close()
	c.Status(http.StatusNoContent)
}

func (h *InboxHandler) MarkRead(c *gin.Context) {
	conv, err := h.Service.MarkRead(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// @Summary      Reply to a conversation
// @Tags         Inbox
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "conversation id"
// @Param        body  body      models.ReplyRequest  true  "message"
// @Success      201   {object}  models.Conversation
// @Failure      422   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /inbox/{id}/reply [post]
func (h *InboxHandler) Reply(c *gin.Context) {
	var req models.ReplyRequest
	if !bindJSON(c, &req) {
		return
	}
	conv, err := h.Service.Reply(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

func (h *InboxHandler) Attach(c *gin.Context) {
	var req models.AttachRequest
	if !bindJSON(c, &req) {
		return
	}
	conv, err := h.Service.Attach(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}
