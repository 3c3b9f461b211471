package order

import (
	"time"

	"hotelpos/internal/core/domain/model/kernel"
)

const (
	PlacedEventName        = "order.placed"
	StatusChangedEventName = "order.status_changed"
)

// Placed is raised once when a new order is created.
type Placed struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	OrderType Type
	Location  string
	CreatedBy kernel.UUID
	At        time.Time
}

func (e Placed) EventID() kernel.UUID     { return e.ID }
func (e Placed) EventName() string        { return PlacedEventName }
func (e Placed) AggregateID() kernel.UUID { return e.OrderID }
func (e Placed) OccurredAt() time.Time    { return e.At }

// StatusChanged is raised on every lifecycle step, including payment.
type StatusChanged struct {
	ID      kernel.UUID
	OrderID kernel.UUID
	From    Status
	To      Status
	At      time.Time
}

func (e StatusChanged) EventID() kernel.UUID     { return e.ID }
func (e StatusChanged) EventName() string        { return StatusChangedEventName }
func (e StatusChanged) AggregateID() kernel.UUID { return e.OrderID }
func (e StatusChanged) OccurredAt() time.Time    { return e.At }
