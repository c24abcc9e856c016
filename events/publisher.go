package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"venue-cart/models"
)

// Publisher writes cart lifecycle events to a Kafka topic. Publishing is
// best effort; callers log and continue on failure.
type Publisher struct {
	writer *kafka.Writer
	topic  string
	tracer trace.Tracer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}
	return &Publisher{
		writer: writer,
		topic:  topic,
		tracer: otel.Tracer("events/publisher"),
	}
}

// PublishCartEvent emits one event keyed by the order's user id, so a
// consumer sees each user's cart changes in order.
func (p *Publisher) PublishCartEvent(ctx context.Context, eventType string, order *models.Order) error {
	ctx, span := p.tracer.Start(ctx, fmt.Sprintf("publish %s", p.topic),
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingDestinationName(p.topic),
			attribute.String("cart.event.type", eventType),
		),
	)
	defer span.End()

	event := CartEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		VenueID:    order.VenueID,
		TotalPrice: order.TotalPrice,
		CreatedAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to serialize cart event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.UserID),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to publish cart event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
