package commands

import (
	"context"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
)

// CreateOrderCommandHandler places orders. Menu lookups, the order row and its
// lines are written in one transaction, so a failed line leaves nothing behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.DefaultTaxRate)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	taxRate    kernel.TaxRate
}

// NewCreateOrderCommandHandler creates a handler that stamps taxRate on every new order.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, taxRate kernel.TaxRate) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		taxRate:    taxRate,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanTakeOrders(), staff.CapTakeOrders); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Type(), cmd.Location(), actor.ID(), time.Now(), h.taxRate)
	if err != nil {
		return err
	}
	o.SetCustomerName(cmd.CustomerName())
	o.SetNotes(cmd.Notes())
	if guestID := cmd.GuestID(); guestID != nil {
		if err = o.AttachGuest(*guestID); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = addItems(ctx, uow.MenuRepository(), o, cmd.Items()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
