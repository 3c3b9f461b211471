package commands

import (
	"errors"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
	"hotelpos/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand records a payment against an order. A completed
// payment also settles the order.
type ProcessPaymentCommand struct {
	actor                *staff.AdminUser
	paymentID            kernel.UUID
	orderID              kernel.UUID
	amount               kernel.Money
	method               payment.Method
	status               payment.Status
	transactionReference string
	notes                string

	guard guard.ConstructorGuard
}

func NewProcessPaymentCommand(
	actor *staff.AdminUser,
	paymentID kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method payment.Method,
	status payment.Status,
) (ProcessPaymentCommand, error) {
	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	errList = append(errList, paymentID.Validate(), orderID.Validate(), method.Validate(), status.Validate())
	if amount <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("amount", amount, 1, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return ProcessPaymentCommand{
		actor:     actor,
		paymentID: paymentID,
		orderID:   orderID,
		amount:    amount,
		method:    method,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

func (c ProcessPaymentCommand) Actor() *staff.AdminUser      { return c.actor }
func (c ProcessPaymentCommand) PaymentID() kernel.UUID       { return c.paymentID }
func (c ProcessPaymentCommand) OrderID() kernel.UUID         { return c.orderID }
func (c ProcessPaymentCommand) Amount() kernel.Money         { return c.amount }
func (c ProcessPaymentCommand) Method() payment.Method       { return c.method }
func (c ProcessPaymentCommand) Status() payment.Status       { return c.status }
func (c ProcessPaymentCommand) TransactionReference() string { return c.transactionReference }
func (c ProcessPaymentCommand) Notes() string                { return c.notes }

// WithReference attaches the card or mobile-money reference and free-text notes.
func (c ProcessPaymentCommand) WithReference(transactionReference string, notes string) ProcessPaymentCommand {
	c.transactionReference = strings.TrimSpace(transactionReference)
	c.notes = strings.TrimSpace(notes)
	return c
}
