package commands

import (
	"context"

	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
)

// AddOrderItemsCommandHandler appends lines to an existing order and stores
// the new lines together with the recomputed totals.
type AddOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddOrderItemsCommandHandler(uowFactory OrderUoWFactory) AddOrderItemsCommandHandler {
	return AddOrderItemsCommandHandler{uowFactory: uowFactory}
}

// Handle returns *errs.InvalidTransitionError for a paid order and
// *errs.ObjectNotFoundError for an unknown order or menu item.
func (h AddOrderItemsCommandHandler) Handle(ctx context.Context, cmd AddOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanTakeOrders(), staff.CapTakeOrders); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = requireOrderAccess(actor, o); err != nil {
		return err
	}
	if o.IsPaid() {
		return errs.NewInvalidTransitionErrorWithCause("order", o.Status().String(), o.Status().String(), order.ErrOrderIsPaid)
	}

	added, err := addItems(ctx, uow.MenuRepository(), o, cmd.Items())
	if err != nil {
		return err
	}

	if err = orderRepo.AppendItems(ctx, o, added); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
