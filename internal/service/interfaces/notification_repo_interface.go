package interfaces

import (
	"context"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
)

type NotificationRepositoryInterface interface {
	List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error)
	Create(ctx context.Context, notification models.Notification) (*models.Notification, error)
	MarkAsRead(ctx context.Context, id string, at time.Time) (*models.Notification, error)
	InsertMany(ctx context.Context, notifications []models.Notification) (int, error)
}
