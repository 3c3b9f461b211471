package services

import (
	"errors"
	"fmt"

	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/pkg/errs"
)

var (
	// ErrPaymentNotCompleted is returned for pending or failed payments.
	ErrPaymentNotCompleted = errors.New("payment is not completed")

	// ErrPaymentOrderMismatch is returned when the payment references another order.
	ErrPaymentOrderMismatch = errors.New("payment belongs to another order")

	// ErrPaymentInsufficient is returned when the amount does not cover the order total.
	ErrPaymentInsufficient = errors.New("payment does not cover the order total")
)

// PaymentApplier settles an order with a payment. It is the only caller of
// order.Order.MarkPaid.
//
// Business rules:
//   - The payment must be completed
//   - The payment must reference the order
//   - The amount must be at least the order total (overpayment is change, not credit)
//   - A paid order cannot be paid again
//
// Example usage:
//
//	applier := services.NewPaymentApplier()
//	if err := applier.Apply(o, p); err != nil {
//	    return err
//	}
//	// o.Status() == order.Paid
type PaymentApplier struct{}

func NewPaymentApplier() PaymentApplier {
	return PaymentApplier{}
}

// Apply validates p against o and marks o paid. On error o is unchanged.
func (PaymentApplier) Apply(o *order.Order, p *payment.Payment) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if !p.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("payment", ErrPaymentOrderMismatch)
	}
	if !p.IsCompleted() {
		return errs.NewValueIsInvalidErrorWithCause("payment",
			fmt.Errorf("%w: status is %s", ErrPaymentNotCompleted, p.Status()))
	}
	if p.Amount() < o.Total() {
		return errs.NewValueIsOutOfRangeErrorWithCause("payment amount", p.Amount(), o.Total(), "unbounded", ErrPaymentInsufficient)
	}

	return o.MarkPaid()
}
