package queries

import (
	"errors"
	"strings"

	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/core/ports"
	"hotelpos/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders a viewer may see, newest first. Staff only
// get the orders they created; managers and above get every order.
//
// Example:
//
//	ready := order.Ready
//	query, _ := NewListOrdersQuery(waiter, &ready, nil)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	viewer      *staff.AdminUser
	status      *order.Status
	orderType   *order.Type
	search      string
	roomNumber  string
	tableNumber string
	guard       guard.ConstructorGuard
}

func NewListOrdersQuery(viewer *staff.AdminUser, status *order.Status, orderType *order.Type) (ListOrdersQuery, error) {
	var statusErr, typeErr error
	if status != nil {
		statusErr = status.Validate()
	}
	if orderType != nil {
		typeErr = orderType.Validate()
	}
	if err := errors.Join(validateActor(viewer), statusErr, typeErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		viewer:    viewer,
		status:    status,
		orderType: orderType,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Viewer() *staff.AdminUser { return q.viewer }
func (q ListOrdersQuery) Status() *order.Status    { return q.status }
func (q ListOrdersQuery) Type() *order.Type        { return q.orderType }

// WithSearch narrows the listing to orders whose customer name, room or table
// number or notes contain search, and to an exact room or table number.
// Empty values do not filter.
func (q ListOrdersQuery) WithSearch(search string, roomNumber string, tableNumber string) ListOrdersQuery {
	q.search = strings.TrimSpace(search)
	q.roomNumber = strings.TrimSpace(roomNumber)
	q.tableNumber = strings.TrimSpace(tableNumber)
	return q
}

func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return ports.OrderFilter{
		Status:      q.status,
		Type:        q.orderType,
		Search:      q.search,
		RoomNumber:  q.roomNumber,
		TableNumber: q.tableNumber,
	}
}
