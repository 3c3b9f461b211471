package commands

import (
	"context"

	"hotelpos/internal/core/domain/model/staff"
)

// UpdateOrderStatusCommandHandler applies a lifecycle step and persists it.
// The status is never coerced: an invalid step fails and nothing is written.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = o.Advance(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
