package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/config"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const (
	deliveryTimeout = 10 * time.Second
	flushTimeoutMs  = 5000
)

// ProducerInterface is the subset of *kafka.Producer used for publishing.
type ProducerInterface interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

type KafkaProducer struct {
	producer ProducerInterface
	topic    string
	timeout  time.Duration
}

func NewKafkaProducer(cfg config.KafkaConfig) (*KafkaProducer, error) {
	kafkaConfig := &kafka.ConfigMap{
		"bootstrap.servers": cfg.Server,
		"client.id":         cfg.ClientID,
	}
	if cfg.SecurityProtocol != "" {
		_ = kafkaConfig.SetKey("security.protocol", cfg.SecurityProtocol)
	}
	if cfg.SASLMechanism != "" {
		_ = kafkaConfig.SetKey("sasl.mechanisms", cfg.SASLMechanism)
		_ = kafkaConfig.SetKey("sasl.username", cfg.SASLUsername)
		_ = kafkaConfig.SetKey("sasl.password", cfg.SASLPassword)
	}

	producer, err := kafka.NewProducer(kafkaConfig)
	if err != nil {
		return nil, fmt.Errorf(log_messages.ErrorKafkaProducerCreation, err)
	}
	logger.Info(log_messages.KafkaProducerCreated, slog.String("topic", cfg.EventsTopic))

	return NewKafkaProducerWithInterface(producer, cfg.EventsTopic), nil
}

func NewKafkaProducerWithInterface(producer ProducerInterface, topic string) *KafkaProducer {
	return &KafkaProducer{producer: producer, topic: topic, timeout: deliveryTimeout}
}

// Publish JSON-encodes value and waits for its delivery report.
func (kp *KafkaProducer) Publish(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf(log_messages.ErrorMarshallingMessage, err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &kp.topic, Partition: kafka.PartitionAny},
		Value:          payload,
	}
	if key != "" {
		msg.Key = []byte(key)
	}

	if err := kp.producer.Produce(msg, deliveryChan); err != nil {
		logger.CtxError(ctx, "Failed to produce Kafka message", err, slog.String("topic", kp.topic))
		return err
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected kafka event type %T", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf(log_messages.ErrorKafkaDelivery, m.TopicPartition.Error)
		}
	case <-time.After(kp.timeout):
		return errors.New(log_messages.KafkaDeliveryTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.CtxDebug(ctx, "Kafka message delivered", slog.String("topic", kp.topic), slog.String("key", key))
	return nil
}

// Close flushes outstanding messages before closing the producer.
func (kp *KafkaProducer) Close() {
	if remaining := kp.producer.Flush(flushTimeoutMs); remaining > 0 {
		logger.Warn("Kafka producer closed with undelivered messages", slog.Int("remaining", remaining))
	}
	kp.producer.Close()
}
