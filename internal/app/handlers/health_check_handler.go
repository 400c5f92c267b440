package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

type HealthCheckHandler struct {
	database interfaces.HealthCheckerInterface
}

func NewHealthCheckHandler(database interfaces.HealthCheckerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{database: database}
}

func (h *HealthCheckHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": consts.ServiceTitle + " API",
		"service": consts.ServiceName,
		"version": consts.ServiceVersion,
	})
}

func (h *HealthCheckHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.database.Ping(ctx); err != nil {
		respondError(c, apperrors.ServiceUnavailable("Database unavailable", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
