package commands

import (
	"context"
	"time"

	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/core/domain/services"
	"hotelpos/internal/pkg/errs"
)

// ProcessPaymentCommandHandler inserts the payment and, for a completed
// payment, moves the order to paid. Both writes commit together or not at all.
//
// Example:
//
//	cmd, _ := NewProcessPaymentCommand(cashier, kernel.NewUUID(), orderID, 2484, payment.Cash, payment.Completed)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // already paid
//	case errors.Is(err, errs.ErrValueIsOutOfRange):
//	    // amount below the order total
//	}
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	applier    services.PaymentApplier
}

func NewProcessPaymentCommandHandler(uowFactory PaymentUoWFactory) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		applier:    services.NewPaymentApplier(),
	}
}

func (h ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Require(actor.CanProcessPayments(), staff.CapProcessPayments); err != nil {
		return err
	}

	p, err := payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), cmd.Amount(), cmd.Method(), cmd.Status(), actor.ID(), time.Now())
	if err != nil {
		return err
	}
	p.SetTransactionReference(cmd.TransactionReference())
	p.SetNotes(cmd.Notes())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
	if o.IsPaid() {
		return errs.NewInvalidTransitionErrorWithCause("order", o.Status().String(), order.Paid.String(), order.ErrOrderIsPaid)
	}

	if p.IsCompleted() {
		if err = h.applier.Apply(o, p); err != nil {
			return err
		}
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return err
	}

	if p.IsCompleted() {
		if err = orderRepo.UpdateStatus(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
