package models

import (
	"encoding/json"
	"time"
)

type Notification struct {
	ID               string     `bson:"_id" json:"id"`
	RecipientID      string     `bson:"recipient_id" json:"recipient_id"`
	RecipientType    string     `bson:"recipient_type" json:"recipient_type"`
	NotificationType string     `bson:"notification_type" json:"notification_type"`
	Title            string     `bson:"title" json:"title"`
	Message          string     `bson:"message" json:"message"`
	IsRead           bool       `bson:"is_read" json:"is_read"`
	SentAt           time.Time  `bson:"sent_at" json:"sent_at"`
	ReadAt           *time.Time `bson:"read_at,omitempty" json:"read_at"`
}

func (n Notification) IsUnread() bool {
	return !n.IsRead
}

// MarkAsRead is one-way; repeating it only moves read_at forward.
func (n *Notification) MarkAsRead(now time.Time) {
	n.IsRead = true
	n.ReadAt = &now
}

func (n Notification) MarshalJSON() ([]byte, error) {
	type notification Notification
	return json.Marshal(struct {
		notification
		IsUnread bool `json:"is_unread"`
	}{notification(n), n.IsUnread()})
}

type NotificationCreate struct {
	RecipientID      string `json:"recipient_id" binding:"required"`
	RecipientType    string `json:"recipient_type" binding:"required,oneof=member agent partner"`
	NotificationType string `json:"notification_type" binding:"required,oneof=payment_due promise_due escalation"`
	Title            string `json:"title" binding:"required"`
	Message          string `json:"message" binding:"required"`
}

func NewNotification(in NotificationCreate, id string, now time.Time) Notification {
	return Notification{
		ID:               id,
		RecipientID:      in.RecipientID,
		RecipientType:    in.RecipientType,
		NotificationType: in.NotificationType,
		Title:            in.Title,
		Message:          in.Message,
		SentAt:           now,
	}
}

type NotificationFilter struct {
	UnreadOnly  bool
	RecipientID string
	Skip        int64
	Limit       int64
}
