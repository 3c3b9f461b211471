package commands

import (
	"errors"
	"fmt"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
	"hotelpos/internal/pkg/guard"
)

var ErrSettlePaymentCommandIsNotConstructed = errors.New(
	"SettlePaymentCommand must be created via NewSettlePaymentCommand constructor",
)

// SettlePaymentCommand closes a pending payment as completed or failed.
type SettlePaymentCommand struct {
	actor                *staff.AdminUser
	paymentID            kernel.UUID
	outcome              payment.Status
	transactionReference string

	guard guard.ConstructorGuard
}

func NewSettlePaymentCommand(actor *staff.AdminUser, paymentID kernel.UUID, outcome payment.Status) (SettlePaymentCommand, error) {
	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	errList = append(errList, paymentID.Validate())
	if outcome != payment.Completed && outcome != payment.Failed {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("outcome",
			fmt.Errorf("%s is not a settled status", outcome)))
	}
	if err := errors.Join(errList...); err != nil {
		return SettlePaymentCommand{}, err
	}

	return SettlePaymentCommand{
		actor:     actor,
		paymentID: paymentID,
		outcome:   outcome,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SettlePaymentCommand) Validate() error {
	return c.guard.Validate(ErrSettlePaymentCommandIsNotConstructed)
}

func (c SettlePaymentCommand) Actor() *staff.AdminUser      { return c.actor }
func (c SettlePaymentCommand) PaymentID() kernel.UUID       { return c.paymentID }
func (c SettlePaymentCommand) Outcome() payment.Status      { return c.outcome }
func (c SettlePaymentCommand) TransactionReference() string { return c.transactionReference }

// WithReference records the processor reference that confirmed the outcome.
// An empty reference keeps the one stored with the payment.
func (c SettlePaymentCommand) WithReference(transactionReference string) SettlePaymentCommand {
	c.transactionReference = strings.TrimSpace(transactionReference)
	return c
}
