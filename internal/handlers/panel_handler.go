package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/views"
)

type panelService[T any, P any] interface {
	OpenPanel(id string) (T, error)
	EditDraft(patch P) (T, error)
	SavePanel() (T, error)
	ClosePanel()
	Panel() views.PanelState[T]
}

// PanelHandler exposes the detail panel of one list view: open a record,
// edit its draft, save or close.
type PanelHandler[T any, P any] struct {
	svc panelService[T, P]
}

func NewPanelHandler[T any, P any](svc panelService[T, P]) *PanelHandler[T, P] {
	return &PanelHandler[T, P]{svc: svc}
}

func (h *PanelHandler[T, P]) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Panel())
}

func (h *PanelHandler[T, P]) Open(c *gin.Context) {
	if _, err := h.svc.OpenPanel(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Panel())
}

func (h *PanelHandler[T, P]) Edit(c *gin.Context) {
	var patch P
	if !bindJSON(c, &patch) {
		return
	}
	if _, err := h.svc.EditDraft(patch); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Panel())
}

// Save commits the draft. On a validation error the panel stays open and the
// response carries the field messages.
func (h *PanelHandler[T, P]) Save(c *gin.Context) {
	saved, err := h.svc.SavePanel()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *PanelHandler[T, P]) Close(c *gin.Context) {
	h.svc.ClosePanel()
	c.Status(http.StatusNoContent)
}
