package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

type PubSubResult interface {
	Get(ctx context.Context) (string, error)
}

type PubSubTopic interface {
	Publish(ctx context.Context, msg *pubsub.Message) PubSubResult
}

type PubSubClient struct {
	Client *pubsub.Client
	Topic  PubSubTopic
}

type GCPTopicAdapter struct {
	topic *pubsub.Topic
}

func (g *GCPTopicAdapter) Publish(ctx context.Context, msg *pubsub.Message) PubSubResult {
	return &GCPPublishResultAdapter{g.topic.Publish(ctx, msg)}
}

type GCPPublishResultAdapter struct {
	res *pubsub.PublishResult
}

func (g *GCPPublishResultAdapter) Get(ctx context.Context) (string, error) {
	return g.res.Get(ctx)
}

type GCPClientFactory func(ctx context.Context, projectID string, opts ...option.ClientOption) (*pubsub.Client, error)

func NewPubSubClient(ctx context.Context, projectID, topicID string, factory GCPClientFactory, opts ...option.ClientOption) (*PubSubClient, error) {
	client, err := factory(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf(log_messages.ErrorPubSubClientCreation, err)
	}

	topic := client.Topic(topicID)
	if topic == nil {
		return nil, fmt.Errorf(log_messages.TopicDoesNotExists, topicID)
	}

	return &PubSubClient{Client: client, Topic: &GCPTopicAdapter{topic: topic}}, nil
}

func (p *PubSubClient) Close() {
	if p.Client == nil {
		return
	}
	if err := p.Client.Close(); err != nil {
		logger.Error("failed to close pubsub client", err)
	}
}

// PublishMessage JSON-encodes message and blocks until the server acknowledges it.
func (p *PubSubClient) PublishMessage(ctx context.Context, message any) (string, error) {
	data, err := json.Marshal(message)
	if err != nil {
		logger.CtxError(ctx, "Error marshalling pubsub message", err)
		return "", fmt.Errorf(log_messages.ErrorMarshallingMessage, err)
	}

	messageID, err := p.Topic.Publish(ctx, &pubsub.Message{Data: data}).Get(ctx)
	if err != nil {
		logger.CtxError(ctx, "Error publishing pubsub message", err)
		return "", fmt.Errorf(log_messages.ErrorInMessagePublishing, err)
	}

	logger.CtxDebug(ctx, "Published pubsub message", slog.String("message_id", messageID))
	return messageID, nil
}
