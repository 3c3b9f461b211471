package commands

import (
	"errors"
	"slices"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
	"hotelpos/internal/pkg/guard"
)

var ErrAddOrderItemsCommandIsNotConstructed = errors.New(
	"AddOrderItemsCommand must be created via NewAddOrderItemsCommand constructor",
)

// AddOrderItemsCommand appends lines to an order that has not been paid yet.
type AddOrderItemsCommand struct {
	actor   *staff.AdminUser
	orderID kernel.UUID
	items   []OrderItem

	guard guard.ConstructorGuard
}

func NewAddOrderItemsCommand(actor *staff.AdminUser, orderID kernel.UUID, items []OrderItem) (AddOrderItemsCommand, error) {
	cmd := AddOrderItemsCommand{guard: guard.NewConstructorGuard()}

	var actorErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := errors.Join(actorErr, orderID.Validate(), validateOrderItems(items)); err != nil {
		return AddOrderItemsCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = orderID
	cmd.items = slices.Clone(items)
	return cmd, nil
}

func (c AddOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemsCommandIsNotConstructed)
}

func (c AddOrderItemsCommand) Actor() *staff.AdminUser { return c.actor }
func (c AddOrderItemsCommand) OrderID() kernel.UUID    { return c.orderID }
func (c AddOrderItemsCommand) Items() []OrderItem      { return slices.Clone(c.items) }
