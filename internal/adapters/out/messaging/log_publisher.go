package messaging

import (
	"context"
	"log/slog"

	"hotelpos/internal/core/domain/model/kernel"
)

// LogPublisher records events in the application log. It stands in for the
// broker when no AMQP_URL is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "event_publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "domain event",
			"event", event.EventName(),
			"event_id", event.EventID().String(),
			"order_id", event.AggregateID().String(),
			"occurred_at", event.OccurredAt(),
		)
	}
	return nil
}
