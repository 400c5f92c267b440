package handlers

import (
	"net/http"

	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports interfaces.ReportServiceInterface
}

func NewReportHandler(reports interfaces.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) NPLSummary(c *gin.Context) {
	rows, err := h.reports.NPLSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) CollectionPerformance(c *gin.Context) {
	rows, err := h.reports.CollectionPerformance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) ExportNPLSummary(c *gin.Context) {
	export, err := h.reports.ExportNPLSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, export)
}
