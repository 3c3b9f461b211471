// Package messaging delivers order domain events to other hotel systems
// (kitchen displays, front desk) over RabbitMQ.
package messaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
)

var ErrUnsupportedEvent = errors.New("unsupported domain event")

// Envelope is the JSON body of every published message. The routing key
// equals EventName.
type Envelope struct {
	EventID    string          `json:"event_id"`
	EventName  string          `json:"event_name"`
	OrderID    string          `json:"order_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type placedPayload struct {
	Type      string `json:"type"`
	Location  string `json:"location,omitempty"`
	CreatedBy string `json:"created_by"`
}

type statusChangedPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func encodeEvent(event kernel.DomainEvent) ([]byte, error) {
	var payload any
	switch e := event.(type) {
	case order.Placed:
		payload = placedPayload{
			Type:      e.OrderType.String(),
			Location:  e.Location,
			CreatedBy: e.CreatedBy.String(),
		}
	case order.StatusChanged:
		payload = statusChangedPayload{
			From: e.From.String(),
			To:   e.To.String(),
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedEvent, event)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Envelope{
		EventID:    event.EventID().String(),
		EventName:  event.EventName(),
		OrderID:    event.AggregateID().String(),
		OccurredAt: event.OccurredAt().UTC(),
		Payload:    raw,
	})
}
