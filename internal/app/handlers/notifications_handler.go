package handlers

import (
	"net/http"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notifications interfaces.NotificationRepositoryInterface
	events        interfaces.EventDispatcherInterface
	now           func() time.Time
	newID         func() string
}

func NewNotificationHandler(
	notifications interfaces.NotificationRepositoryInterface,
	events interfaces.EventDispatcherInterface,
) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		events:        events,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         uuid.NewString,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	skip, limit, err := pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	unreadOnly, err := queryBool(c, "unread_only", false)
	if err != nil {
		respondError(c, err)
		return
	}

	notifications, err := h.notifications.List(c.Request.Context(), models.NotificationFilter{
		UnreadOnly:  unreadOnly,
		RecipientID: c.Query("recipient_id"),
		Skip:        skip,
		Limit:       limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// Create stores an unread notification and hands it to the delivery topic.
func (h *NotificationHandler) Create(c *gin.Context) {
	var in models.NotificationCreate
	if !bindJSON(c, &in) {
		return
	}

	ctx := c.Request.Context()
	notification, err := h.notifications.Create(ctx, models.NewNotification(in, h.newID(), h.now()))
	if err != nil {
		respondError(c, err)
		return
	}

	h.events.Notification(ctx, *notification)
	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notification, err := h.notifications.MarkAsRead(c.Request.Context(), c.Param("id"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": notification,
	})
}
