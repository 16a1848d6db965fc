package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"activity-sampler/internal/domain"
	apperrors "activity-sampler/internal/errors"
	"activity-sampler/internal/eventstore"
)

// EventTypeActivityLogged is sent in the event_type header of every message.
const EventTypeActivityLogged = "activity.logged"

// MessageWriter exposes the minimal kafka.Writer interface needed by the publisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher announces recorded activities on a Kafka topic.
type KafkaPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

// NewKafkaPublisher creates a publisher writing synchronously to topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return NewPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	})
}

// NewPublisher creates a publisher on an existing writer.
func NewPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, now: time.Now}
}

// Publish sends activity as its raw event record, keyed by task name.
func (p *KafkaPublisher) Publish(ctx context.Context, activity domain.Activity) error {
	payload, err := json.Marshal(eventstore.EncodeActivity(activity))
	if err != nil {
		return apperrors.NewStorageError("encode activity notification", err)
	}

	msg := kafka.Message{
		Key:   []byte(activity.Task),
		Value: payload,
		Time:  p.now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeActivityLogged)},
			{Key: "content_type", Value: []byte("application/json")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return apperrors.NewStorageError("publish activity notification", err)
	}
	return nil
}

// Listener adapts Publish to the event store observer.
func (p *KafkaPublisher) Listener() eventstore.Listener {
	return p.Publish
}

// Close releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
