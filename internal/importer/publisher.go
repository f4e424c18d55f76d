package importer

import (
	"context"
	"encoding/json"

	"github.com/buildsbyrafael/datapersistence/internal/events"

	"github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishImportCompleted(ctx context.Context, event events.ImportCompletedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishImportCompleted(context.Context, events.ImportCompletedEvent) error {
	return nil
}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishImportCompleted(
	ctx context.Context,
	event events.ImportCompletedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.ImportCompletedTopic,
		Key:   []byte(event.Entity),
		Value: payload,
	})
}
