package queries

import (
	"errors"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/guard"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// ListPaymentsQuery lists recorded payments, newest first. Managers and above.
type ListPaymentsQuery struct {
	actor   *staff.AdminUser
	method  *payment.Method
	status  *payment.Status
	orderID *kernel.UUID
	guard   guard.ConstructorGuard
}

func NewListPaymentsQuery(actor *staff.AdminUser, method *payment.Method, status *payment.Status) (ListPaymentsQuery, error) {
	var methodErr, statusErr error
	if method != nil {
		methodErr = method.Validate()
	}
	if status != nil {
		statusErr = status.Validate()
	}
	if err := errors.Join(validateActor(actor), methodErr, statusErr); err != nil {
		return ListPaymentsQuery{}, err
	}

	return ListPaymentsQuery{
		actor:  actor,
		method: method,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

func (q ListPaymentsQuery) Actor() *staff.AdminUser { return q.actor }
func (q ListPaymentsQuery) Method() *payment.Method  { return q.method }
func (q ListPaymentsQuery) Status() *payment.Status  { return q.status }
func (q ListPaymentsQuery) OrderID() *kernel.UUID    { return q.orderID }

// ForOrder narrows the listing to the payments of one order.
func (q ListPaymentsQuery) ForOrder(orderID kernel.UUID) (ListPaymentsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListPaymentsQuery{}, err
	}
	q.orderID = &orderID
	return q, nil
}

type PaymentResponse struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	Amount               kernel.Money
	Method               payment.Method
	Status               payment.Status
	TransactionReference string
	Notes                string
	CreatedAt            time.Time
	ProcessedBy          kernel.UUID
	ProcessedByName      string
}
