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

type CallHandler struct {
	calls    interfaces.CallLogRepositoryInterface
	autoDial interfaces.AutoDialServiceInterface
	events   interfaces.EventDispatcherInterface
	now      func() time.Time
	newID    func() string
}

func NewCallHandler(
	calls interfaces.CallLogRepositoryInterface,
	autoDial interfaces.AutoDialServiceInterface,
	events interfaces.EventDispatcherInterface,
) *CallHandler {
	return &CallHandler{
		calls:    calls,
		autoDial: autoDial,
		events:   events,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (h *CallHandler) List(c *gin.Context) {
	skip, limit, err := pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	calls, err := h.calls.List(c.Request.Context(), models.CallLogFilter{
		LoanID: c.Query("loan_id"),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, calls)
}

func (h *CallHandler) Create(c *gin.Context) {
	var in models.CallLogCreate
	if !bindJSON(c, &in) {
		return
	}

	ctx := c.Request.Context()
	now := h.now()
	if in.EndsBeforeStart(now) {
		respondError(c, invalidParam("call_end_time", "gtefield", "call_end_time must not be before call_start_time"))
		return
	}

	call, err := h.calls.Create(ctx, models.NewCallLog(in, h.newID(), models.AgentFromContext(ctx), now))
	if err != nil {
		respondError(c, err)
		return
	}

	h.events.CollectionEvent(ctx, consts.EventCallLogged, call.ID, call.LoanID, call)
	c.JSON(http.StatusCreated, call)
}

// AutoDial picks the next delinquent borrower to call.
func (h *CallHandler) AutoDial(c *gin.Context) {
	candidate, err := h.autoDial.Next(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}
