package handlers

import (
	"net/http"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	assignments interfaces.PartnerAssignmentRepositoryInterface
	partners    interfaces.PartnerRepositoryInterface
	events      interfaces.EventDispatcherInterface
	now         func() time.Time
	newID       func() string
}

func NewAssignmentHandler(
	assignments interfaces.PartnerAssignmentRepositoryInterface,
	partners interfaces.PartnerRepositoryInterface,
	events interfaces.EventDispatcherInterface,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignments: assignments,
		partners:    partners,
		events:      events,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

func (h *AssignmentHandler) List(c *gin.Context) {
	skip, limit, err := pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	assignments, err := h.assignments.List(c.Request.Context(), models.PartnerAssignmentFilter{
		Status:    c.Query("status"),
		PartnerID: c.Query("partner_id"),
		LoanID:    c.Query("loan_id"),
		Skip:      skip,
		Limit:     limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentHandler) Get(c *gin.Context) {
	assignment, err := h.assignments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// Create escalates a loan to an active partner.
func (h *AssignmentHandler) Create(c *gin.Context) {
	var in models.PartnerAssignmentCreate
	if !bindJSON(c, &in) {
		return
	}

	ctx := c.Request.Context()
	partner, err := h.partners.GetByID(ctx, in.PartnerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !partner.IsActive {
		respondError(c, invalidParam("partner_id", "active", "partner "+partner.PartnerName+" is not active"))
		return
	}

	assignment, err := h.assignments.Create(ctx, models.NewPartnerAssignment(in, h.newID(), h.now()))
	if err != nil {
		respondError(c, err)
		return
	}

	h.events.CollectionEvent(ctx, consts.EventPartnerAssigned, assignment.ID, assignment.LoanID, assignment)
	c.JSON(http.StatusCreated, assignment)
}

// Update recomputes the commission from the partner's rate when the recovered amount changes.
func (h *AssignmentHandler) Update(c *gin.Context) {
	var in models.PartnerAssignmentUpdate
	if !bindJSON(c, &in) {
		return
	}

	ctx := c.Request.Context()
	current, err := h.assignments.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	partner, err := h.partners.GetByID(ctx, current.PartnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	assignment, err := h.assignments.Update(ctx, current.ID, in.Fields(*partner))
	if err != nil {
		respondError(c, err)
		return
	}

	h.events.CollectionEvent(ctx, consts.EventAssignmentUpdated, assignment.ID, assignment.LoanID, assignment)
	c.JSON(http.StatusOK, assignment)
}
