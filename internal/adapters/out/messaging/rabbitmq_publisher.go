package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hotelpos/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "hotelpos.orders"
	publishTimeout  = 5 * time.Second
)

var ErrPublishNotConfirmed = errors.New("broker did not confirm the message")

// RabbitMQPublisher publishes domain events to a durable topic exchange in
// confirm mode. Each event is routed by its name, e.g. "order.placed".
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger

	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewRabbitMQPublisher(url string, exchange string, logger *slog.Logger) (*RabbitMQPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err = channel.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	if err = channel.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	return &RabbitMQPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger.With("component", "event_publisher", "exchange", exchange),
	}, nil
}

// Publish sends events in order and stops at the first failure.
func (p *RabbitMQPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, event := range events {
		body, err := encodeEvent(event)
		if err != nil {
			return err
		}

		if err = p.publish(ctx, event, body); err != nil {
			return fmt.Errorf("publish %s %s: %w", event.EventName(), event.EventID(), err)
		}

		p.logger.Debug("event published", "event", event.EventName(), "order_id", event.AggregateID().String())
	}
	return nil
}

func (p *RabbitMQPublisher) publish(ctx context.Context, event kernel.DomainEvent, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	confirmation, err := p.channel.PublishWithDeferredConfirmWithContext(ctx,
		p.exchange,        // exchange
		event.EventName(), // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.EventID().String(),
			Type:         event.EventName(),
			Body:         body,
			Timestamp:    event.OccurredAt(),
		})
	if err != nil {
		return err
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return ErrPublishNotConfirmed
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return errors.Join(p.channel.Close(), p.conn.Close())
}
