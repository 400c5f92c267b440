package handlers

import (
	"net/http"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	partners interfaces.PartnerRepositoryInterface
}

func NewPartnerHandler(partners interfaces.PartnerRepositoryInterface) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

// List shows only active partners unless active_only=false.
func (h *PartnerHandler) List(c *gin.Context) {
	activeOnly, err := queryBool(c, "active_only", true)
	if err != nil {
		respondError(c, err)
		return
	}

	partners, err := h.partners.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

func (h *PartnerHandler) Get(c *gin.Context) {
	partner, err := h.partners.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var in models.ExternalPartnerCreate
	if !bindJSON(c, &in) {
		return
	}

	partner, err := h.partners.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, partner)
}
