package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records money taken for one order.
type Payment struct {
	id                   kernel.UUID
	orderID              kernel.UUID
	amount               kernel.Money
	method               Method
	status               Status
	transactionReference string
	notes                string
	createdAt            time.Time
	processedBy          kernel.UUID

	isConstructed bool
}

// NewPayment validates and builds a payment.
//
// Example:
//
//	p, err := payment.NewPayment(kernel.NewUUID(), orderID, 2484, payment.Cash, payment.Completed, staffID, time.Now())
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	processedBy kernel.UUID,
	createdAt time.Time,
) (*Payment, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("order id", err))
	}
	if amount <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("amount", amount, 1, "unbounded"))
	}
	if err := method.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := status.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := processedBy.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("processed by", err))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		method:        method,
		status:        status,
		processedBy:   processedBy,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID              { return p.id }
func (p *Payment) OrderID() kernel.UUID         { return p.orderID }
func (p *Payment) Amount() kernel.Money         { return p.amount }
func (p *Payment) Method() Method               { return p.method }
func (p *Payment) Status() Status               { return p.status }
func (p *Payment) TransactionReference() string { return p.transactionReference }
func (p *Payment) Notes() string                { return p.notes }
func (p *Payment) CreatedAt() time.Time         { return p.createdAt }
func (p *Payment) ProcessedBy() kernel.UUID     { return p.processedBy }

// IsCompleted reports whether the money was actually received.
func (p *Payment) IsCompleted() bool {
	return p.status == Completed
}

// Settle moves a pending payment to completed or failed. Settled payments
// never change again.
func (p *Payment) Settle(outcome Status) error {
	if p.status != Pending {
		return errs.NewInvalidTransitionError("payment", p.status.String(), outcome.String())
	}
	if outcome != Completed && outcome != Failed {
		return errs.NewValueIsInvalidErrorWithCause("payment outcome",
			fmt.Errorf("%s is not a settled status", outcome))
	}

	p.status = outcome
	return nil
}

func (p *Payment) SetTransactionReference(ref string) {
	p.transactionReference = strings.TrimSpace(ref)
}

func (p *Payment) SetNotes(notes string) {
	p.notes = strings.TrimSpace(notes)
}
