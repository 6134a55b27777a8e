package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

// Publisher delivers domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event model.UserRegistered) error
}

type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes events as persistent JSON messages to a durable RabbitMQ queue.
type AMQPPublisher struct {
	open  func() (amqpChannel, error)
	queue string
}

// NewAMQPPublisher builds AMQPPublisher on top of an established connection.
func NewAMQPPublisher(conn *amqp.Connection, queue string) *AMQPPublisher {
	return &AMQPPublisher{
		open:  func() (amqpChannel, error) { return conn.Channel() },
		queue: queue,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event model.UserRegistered) error {
	ch, err := p.open()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         payload,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// LogPublisher writes events to the application log. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event model.UserRegistered) error {
	p.logger.InfoContext(ctx, "domain event",
		slog.String("type", event.Type),
		slog.String("user_id", event.UserID),
		slog.Time("occurred_at", event.OccurredAt),
	)
	return nil
}
