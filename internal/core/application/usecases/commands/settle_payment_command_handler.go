package commands

import (
	"context"

	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/core/domain/services"
	"hotelpos/internal/pkg/errs"
)

// SettlePaymentCommandHandler resolves a pending payment. Completing it
// settles the order through the payment applier, in the same unit of work as
// the payment update, so the order and its payments never disagree.
//
// Example:
//
//	cmd, _ := NewSettlePaymentCommand(cashier, paymentID, payment.Completed)
//	err := handler.Handle(ctx, cmd.WithReference("MPESA-QX81"))
//	// errs.ErrInvalidTransition: the payment was already settled or the order is paid
type SettlePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	applier    services.PaymentApplier
}

func NewSettlePaymentCommandHandler(uowFactory PaymentUoWFactory) SettlePaymentCommandHandler {
	return SettlePaymentCommandHandler{
		uowFactory: uowFactory,
		applier:    services.NewPaymentApplier(),
	}
}

func (h SettlePaymentCommandHandler) Handle(ctx context.Context, cmd SettlePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanProcessPayments(), staff.CapProcessPayments); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	p, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}
	if err = p.Settle(cmd.Outcome()); err != nil {
		return err
	}
	if ref := cmd.TransactionReference(); ref != "" {
		p.SetTransactionReference(ref)
	}

	if cmd.Outcome() == payment.Completed {
		orderRepo := uow.OrderRepository()
		o, err := orderRepo.Get(ctx, p.OrderID())
		if err != nil {
			return err
		}
		if o.IsPaid() {
			return errs.NewInvalidTransitionErrorWithCause("order", o.Status().String(), order.Paid.String(), order.ErrOrderIsPaid)
		}
		if err = h.applier.Apply(o, p); err != nil {
			return err
		}
		if err = paymentRepo.Update(ctx, p); err != nil {
			return err
		}
		if err = orderRepo.UpdateStatus(ctx, o); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
