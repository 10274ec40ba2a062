package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Summary())
}
