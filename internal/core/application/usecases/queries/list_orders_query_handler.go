package queries

import (
	"context"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderLister is the part of the order store that scopes listings to what a
// viewer may see.
type OrderLister interface {
	ListForViewer(ctx context.Context, viewer *staff.AdminUser, filter ports.OrderFilter) ([]*order.Order, error)
}

// ListOrdersQueryHandler leaves visibility and filtering to the order store
// and only adds the names of the staff who took the orders.
type ListOrdersQueryHandler struct {
	orders OrderLister
	db     *gorm.DB
}

func NewListOrdersQueryHandler(orders OrderLister, db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	viewer := query.Viewer()
	if err := viewer.Require(viewer.CanTakeOrders(), staff.CapTakeOrders); err != nil {
		return nil, err
	}

	found, err := h.orders.ListForViewer(ctx, viewer, query.Filter())
	if err != nil {
		return nil, err
	}

	creators := make([]kernel.UUID, 0, len(found))
	for _, o := range found {
		creators = append(creators, o.CreatedBy())
	}
	names, err := staffNames(ctx, h.db, creators)
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(found))
	for _, o := range found {
		orders = append(orders, orderResponseFromDomain(o, names[o.CreatedBy()]))
	}
	return orders, nil
}

// staffNames maps account ids to display names. Unknown ids are left out.
func staffNames(ctx context.Context, db *gorm.DB, ids []kernel.UUID) (map[kernel.UUID]string, error) {
	names := make(map[kernel.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`SELECT id, name FROM admin_users WHERE id IN ?`, raw).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		converted, err := uuidFromDB(id)
		if err != nil {
			return nil, err
		}
		names[converted] = name
	}

	return names, rows.Err()
}
