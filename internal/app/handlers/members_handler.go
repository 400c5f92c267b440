package handlers

import (
	"net/http"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	members interfaces.MemberRepositoryInterface
}

func NewMemberHandler(members interfaces.MemberRepositoryInterface) *MemberHandler {
	return &MemberHandler{members: members}
}

func (h *MemberHandler) List(c *gin.Context) {
	skip, limit, err := pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	members, err := h.members.List(c.Request.Context(), models.MemberFilter{
		Search: c.Query("search"),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.members.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) GetByNumber(c *gin.Context) {
	member, err := h.members.GetByNumber(c.Request.Context(), c.Param("member_number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var in models.MemberCreate
	if !bindJSON(c, &in) {
		return
	}

	member, err := h.members.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	var in models.MemberUpdate
	if !bindJSON(c, &in) {
		return
	}

	member, err := h.members.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	found, err := h.members.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, apperrors.NotFound("Member"))
		return
	}
	c.Status(http.StatusNoContent)
}
