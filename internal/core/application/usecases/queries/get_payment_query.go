package queries

import (
	"errors"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/guard"
)

var ErrGetPaymentQueryIsNotConstructed = errors.New(
	"GetPaymentQuery must be created via NewGetPaymentQuery constructor",
)

// GetPaymentQuery reads one payment. Anyone who may process payments may read
// it back.
type GetPaymentQuery struct {
	actor     *staff.AdminUser
	paymentID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetPaymentQuery(actor *staff.AdminUser, paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := errors.Join(validateActor(actor), paymentID.Validate()); err != nil {
		return GetPaymentQuery{}, err
	}

	return GetPaymentQuery{
		actor:     actor,
		paymentID: paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

func (q GetPaymentQuery) Actor() *staff.AdminUser { return q.actor }
func (q GetPaymentQuery) PaymentID() kernel.UUID  { return q.paymentID }
