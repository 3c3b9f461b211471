package queries

import (
	"context"
	"database/sql"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderResponse is the read model of an order as shown to staff.
type OrderResponse struct {
	ID             kernel.UUID
	Type           order.Type
	Status         order.Status
	LocationKind   string
	LocationNumber string
	Location       string
	CustomerName   string
	GuestID        *kernel.UUID
	Notes          string
	TaxRateBP      int
	Subtotal       kernel.Money
	Tax            kernel.Money
	Total          kernel.Money
	CreatedAt      time.Time
	CreatedBy      kernel.UUID
	CreatedByName  string
	Items          []OrderItemResponse
}

type OrderItemResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  kernel.Money
	Quantity   int
	Notes      string
	LineTotal  kernel.Money
}

const orderColumns = `
	SELECT o.id, o.type, o.status, o.location_kind, o.location_number,
	       o.customer_name, o.guest_id, o.notes, o.tax_rate_bp,
	       o.subtotal, o.tax, o.total, o.created_at, o.created_by,
	       COALESCE(a.name, '')
	FROM orders o
	LEFT JOIN admin_users a ON a.id = o.created_by`

func scanOrder(rows *sql.Rows) (OrderResponse, error) {
	var (
		r                    OrderResponse
		id, createdBy        uuid.UUID
		guestID              uuid.NullUUID
		orderType, status    string
		kind, number         sql.NullString
		customer, notes      sql.NullString
		subtotal, tax, total int64
	)
	err := rows.Scan(&id, &orderType, &status, &kind, &number,
		&customer, &guestID, &notes, &r.TaxRateBP,
		&subtotal, &tax, &total, &r.CreatedAt, &createdBy,
		&r.CreatedByName)
	if err != nil {
		return OrderResponse{}, err
	}

	if r.ID, err = uuidFromDB(id); err != nil {
		return OrderResponse{}, err
	}
	if r.CreatedBy, err = uuidFromDB(createdBy); err != nil {
		return OrderResponse{}, err
	}
	if r.GuestID, err = nullableUUIDFromDB(guestID); err != nil {
		return OrderResponse{}, err
	}
	if r.Type, err = order.ParseType(orderType); err != nil {
		return OrderResponse{}, err
	}
	if r.Status, err = order.ParseStatus(status); err != nil {
		return OrderResponse{}, err
	}

	r.LocationKind = kind.String
	r.LocationNumber = number.String
	r.Location = locationLabel(kind.String, number.String)
	r.CustomerName = customer.String
	r.Notes = notes.String
	r.Subtotal = kernel.Money(subtotal)
	r.Tax = kernel.Money(tax)
	r.Total = kernel.Money(total)
	r.Items = make([]OrderItemResponse, 0)
	return r, nil
}

// orderResponseFromDomain renders an aggregate loaded from the order store.
func orderResponseFromDomain(o *order.Order, createdByName string) OrderResponse {
	r := OrderResponse{
		ID:            o.ID(),
		Type:          o.Type(),
		Status:        o.Status(),
		CustomerName:  o.CustomerName(),
		GuestID:       o.GuestID(),
		Notes:         o.Notes(),
		TaxRateBP:     o.TaxRate().BasisPoints(),
		Subtotal:      o.Subtotal(),
		Tax:           o.Tax(),
		Total:         o.Total(),
		CreatedAt:     o.CreatedAt(),
		CreatedBy:     o.CreatedBy(),
		CreatedByName: createdByName,
		Items:         make([]OrderItemResponse, 0, len(o.Lines())),
	}
	if loc := o.Location(); loc != nil {
		r.LocationKind = loc.Kind().String()
		r.LocationNumber = loc.Number()
		r.Location = o.LocationLabel()
	}

	for _, line := range o.Lines() {
		r.Items = append(r.Items, OrderItemResponse{
			ID:         line.ID(),
			MenuItemID: line.MenuItemID(),
			Name:       line.Name(),
			UnitPrice:  line.UnitPrice(),
			Quantity:   line.Quantity(),
			Notes:      line.Notes(),
			LineTotal:  line.Amount(),
		})
	}
	return r
}

// attachItems loads the lines of the given orders in one round trip and
// appends them in insertion order.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i, o := range orders {
		index[o.ID] = i
		ids = append(ids, o.ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, order_id, menu_item_id, name, unit_price, quantity, notes
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                    OrderItemResponse
			id, orderID, menuItemID uuid.UUID
			unitPrice               int64
			notes                   sql.NullString
		)
		if err = rows.Scan(&id, &orderID, &menuItemID, &item.Name, &unitPrice, &item.Quantity, &notes); err != nil {
			return err
		}

		if item.ID, err = uuidFromDB(id); err != nil {
			return err
		}
		if item.MenuItemID, err = uuidFromDB(menuItemID); err != nil {
			return err
		}
		owner, err := uuidFromDB(orderID)
		if err != nil {
			return err
		}

		item.UnitPrice = kernel.Money(unitPrice)
		item.Notes = notes.String
		item.LineTotal = item.UnitPrice.Times(item.Quantity)

		i, ok := index[owner]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}

	return rows.Err()
}
