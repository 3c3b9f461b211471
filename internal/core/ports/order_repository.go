// Package ports defines the contracts between the POS core and its adapters:
// repositories, the menu catalog, identity resolution and event publication.
package ports

import (
	"context"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
)

// OrderFilter narrows a listing. Nil and empty fields do not filter.
type OrderFilter struct {
	Status *order.Status
	Type   *order.Type

	// Search matches customer name, room or table number and order notes,
	// case-insensitively.
	Search      string
	RoomNumber  string
	TableNumber string
}

// OrderRepository defines the persistence contract for order aggregates and
// their line items.
type OrderRepository interface {
	// Add persists a new order together with all of its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// AppendItems persists lines newly added to an existing order and its
	// recomputed totals. Lines already stored are left untouched.
	AppendItems(ctx context.Context, aggregate *order.Order, lines []order.LineItem) error

	// UpdateStatus persists the order's current status.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines in insertion order. Within a
	// unit of work the order is locked until the transaction ends.
	// Returns *errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListForViewer returns the orders viewer may see, newest first.
	// Users who cannot view all orders only get the ones they created.
	//
	// Example:
	//   pending := order.Pending
	//   orders, err := repo.ListForViewer(ctx, waiter, ports.OrderFilter{Status: &pending})
	ListForViewer(ctx context.Context, viewer *staff.AdminUser, filter OrderFilter) ([]*order.Order, error)

	// ListStale returns orders in status that were created before olderThan.
	ListStale(ctx context.Context, status order.Status, olderThan time.Time) ([]*order.Order, error)
}
