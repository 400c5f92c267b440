package interfaces

import (
	"context"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
)

type PubSubPublisherInterface interface {
	Close()
	PublishMessage(context.Context, any) (string, error)
}

type KafkaProducerInterface interface {
	Publish(ctx context.Context, key string, value any) error
	Close()
}

// EventDispatcherInterface fans domain events out to the configured transports.
type EventDispatcherInterface interface {
	CollectionEvent(ctx context.Context, eventType consts.EventType, entityID, loanID string, payload any)
	Notification(ctx context.Context, notification models.Notification)
}
