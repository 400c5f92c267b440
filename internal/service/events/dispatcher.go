// Package events fans collection events out to Kafka and notifications out to Pub/Sub.
// Publishing happens in the background; failures are logged and never reach the caller.
package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/google/uuid"
)

const publishTimeout = 15 * time.Second

type Dispatcher struct {
	producer  interfaces.KafkaProducerInterface
	publisher interfaces.PubSubPublisherInterface
	now       func() time.Time
	newID     func() string
	wg        sync.WaitGroup
}

// NewDispatcher accepts nil for either transport; events for a missing transport are dropped.
func NewDispatcher(producer interfaces.KafkaProducerInterface, publisher interfaces.PubSubPublisherInterface) *Dispatcher {
	return &Dispatcher{
		producer:  producer,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (d *Dispatcher) CollectionEvent(ctx context.Context, eventType consts.EventType, entityID, loanID string, payload any) {
	if d.producer == nil {
		return
	}

	event := models.CollectionEvent{
		EventID:    d.newID(),
		EventType:  string(eventType),
		EntityID:   entityID,
		LoanID:     loanID,
		AgentID:    models.AgentFromContext(ctx).ID,
		OccurredAt: d.now(),
		Payload:    payload,
	}

	key := loanID
	if key == "" {
		key = entityID
	}

	d.goPublish(ctx, func(ctx context.Context) {
		if err := d.producer.Publish(ctx, key, event); err != nil {
			logger.CtxError(ctx, log_messages.ErrorPublishingCollectionEvent, err,
				slog.String("event_type", event.EventType),
				slog.String("entity_id", entityID),
			)
			return
		}
		logger.CtxDebug(ctx, "Collection event published", slog.String("event_type", event.EventType), slog.String("event_id", event.EventID))
	})
}

func (d *Dispatcher) Notification(ctx context.Context, notification models.Notification) {
	if d.publisher == nil {
		return
	}

	d.goPublish(ctx, func(ctx context.Context) {
		messageID, err := d.publisher.PublishMessage(ctx, notification)
		if err != nil {
			logger.CtxError(ctx, log_messages.ErrorDispatchingNotification, err, slog.String("notification_id", notification.ID))
			return
		}
		logger.CtxInfo(ctx, "Notification dispatched",
			slog.String("notification_id", notification.ID),
			slog.String("message_id", messageID),
		)
	})
}

// Wait blocks until every in-flight publish has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) goPublish(ctx context.Context, publish func(context.Context)) {
	// Detached so the publish outlives the request while keeping its trace id.
	base := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(base, publishTimeout)
		defer cancel()
		publish(ctx)
	}()
}
