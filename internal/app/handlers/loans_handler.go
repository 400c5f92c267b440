package handlers

import (
	"net/http"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loans   interfaces.LoanRepositoryInterface
	members interfaces.MemberRepositoryInterface
}

func NewLoanHandler(loans interfaces.LoanRepositoryInterface, members interfaces.MemberRepositoryInterface) *LoanHandler {
	return &LoanHandler{loans: loans, members: members}
}

// List passes the status filter through unchecked; an unknown status simply matches nothing.
func (h *LoanHandler) List(c *gin.Context) {
	skip, limit, err := pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	loans, err := h.loans.List(c.Request.Context(), models.LoanFilter{
		Status:       c.Query("status"),
		MemberSearch: c.Query("member_search"),
		Skip:         skip,
		Limit:        limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) Get(c *gin.Context) {
	loan, err := h.loans.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

// Member returns the borrower behind a loan.
func (h *LoanHandler) Member(c *gin.Context) {
	ctx := c.Request.Context()

	loan, err := h.loans.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	member, err := h.members.GetByID(ctx, loan.MemberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *LoanHandler) ListByMember(c *gin.Context) {
	loans, err := h.loans.ListByMember(c.Request.Context(), c.Param("member_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) Create(c *gin.Context) {
	var in models.LoanAccountCreate
	if !bindJSON(c, &in) {
		return
	}

	loan, err := h.loans.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loan)
}

func (h *LoanHandler) Update(c *gin.Context) {
	var in models.LoanAccountUpdate
	if !bindJSON(c, &in) {
		return
	}

	loan, err := h.loans.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) PortfolioTotals(c *gin.Context) {
	totals, err := h.loans.PortfolioTotals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
