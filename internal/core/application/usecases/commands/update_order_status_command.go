package commands

import (
	"errors"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
	"hotelpos/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order one step along its lifecycle.
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(cook, orderID, order.Preparing)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the order is not in Pending
//	}
type UpdateOrderStatusCommand struct {
	actor   *staff.AdminUser
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(actor *staff.AdminUser, orderID kernel.UUID, status order.Status) (UpdateOrderStatusCommand, error) {
	var actorErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(actorErr, orderID.Validate(), status.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		actor:   actor,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Actor() *staff.AdminUser { return c.actor }
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID    { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status    { return c.status }
