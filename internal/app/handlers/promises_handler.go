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

const promiseStatusValues = "pending kept broken expired"

type PromiseHandler struct {
	promises interfaces.PromiseRepositoryInterface
	events   interfaces.EventDispatcherInterface
	now      func() time.Time
	newID    func() string
}

func NewPromiseHandler(promises interfaces.PromiseRepositoryInterface, events interfaces.EventDispatcherInterface) *PromiseHandler {
	return &PromiseHandler{
		promises: promises,
		events:   events,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (h *PromiseHandler) List(c *gin.Context) {
	skip, limit, err := pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	promises, err := h.promises.List(c.Request.Context(), models.PromiseFilter{
		Status: c.Query("status"),
		LoanID: c.Query("loan_id"),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promises)
}

func (h *PromiseHandler) Get(c *gin.Context) {
	promise, err := h.promises.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promise)
}

// Create always opens the promise as pending, attributed to the calling agent
// unless the body names one.
func (h *PromiseHandler) Create(c *gin.Context) {
	var in models.PromiseToPayCreate
	if !bindJSON(c, &in) {
		return
	}

	ctx := c.Request.Context()
	promise, err := h.promises.Create(ctx, models.NewPromiseToPay(in, h.newID(), models.AgentFromContext(ctx), h.now()))
	if err != nil {
		respondError(c, err)
		return
	}

	h.events.CollectionEvent(ctx, consts.EventPromiseCreated, promise.ID, promise.LoanID, promise)
	c.JSON(http.StatusCreated, promise)
}

// UpdateStatus overwrites the status without checking the transition.
func (h *PromiseHandler) UpdateStatus(c *gin.Context) {
	status := models.PromiseStatus(c.Query("status"))
	if !status.Valid() {
		respondError(c, invalidParam("status", "oneof", "status must be one of ["+promiseStatusValues+"]"))
		return
	}

	ctx := c.Request.Context()
	promise, err := h.promises.UpdateStatus(ctx, c.Param("id"), status, h.now())
	if err != nil {
		respondError(c, err)
		return
	}

	h.events.CollectionEvent(ctx, consts.EventPromiseStatusChanged, promise.ID, promise.LoanID, promise)
	c.JSON(http.StatusOK, gin.H{
		"message": "Promise status updated",
		"promise": promise,
	})
}
