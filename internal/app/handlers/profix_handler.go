package handlers

import (
	"net/http"

	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type ProfixHandler struct {
	profix interfaces.ProfixServiceInterface
}

func NewProfixHandler(profix interfaces.ProfixServiceInterface) *ProfixHandler {
	return &ProfixHandler{profix: profix}
}

func (h *ProfixHandler) Sync(c *gin.Context) {
	result, err := h.profix.Sync(c.Request.Context(), c.Param("loan_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ProfixHandler) LastSync(c *gin.Context) {
	result, err := h.profix.LastSync(c.Request.Context(), c.Param("loan_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
