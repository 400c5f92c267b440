package handlers

import (
	"net/http"

	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard interfaces.DashboardServiceInterface
}

func NewDashboardHandler(dashboard interfaces.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
