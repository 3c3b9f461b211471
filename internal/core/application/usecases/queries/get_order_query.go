package queries

import (
	"errors"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads a single order with its items on behalf of actor.
type GetOrderQuery struct {
	actor   *staff.AdminUser
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(actor *staff.AdminUser, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(validateActor(actor), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() *staff.AdminUser { return q.actor }
func (q GetOrderQuery) OrderID() kernel.UUID    { return q.orderID }
