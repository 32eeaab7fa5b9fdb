package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type Publisher interface {
	PublishOrderCompleted(ctx context.Context, event OrderCompletedEvent) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *KafkaPublisher) PublishOrderCompleted(ctx context.Context, event OrderCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("ORDER#%s", event.OrderID)
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is wired when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCompleted(context.Context, OrderCompletedEvent) error { return nil }
func (NopPublisher) Close() error                                                     { return nil }
