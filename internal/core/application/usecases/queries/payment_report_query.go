package queries

import (
	"errors"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/guard"
)

var ErrPaymentReportQueryIsNotConstructed = errors.New(
	"PaymentReportQuery must be created via NewPaymentReportQuery constructor",
)

// PaymentReportQuery summarises payments recorded within a period.
type PaymentReportQuery struct {
	actor *staff.AdminUser
	start *time.Time
	end   *time.Time
	guard guard.ConstructorGuard
}

func NewPaymentReportQuery(actor *staff.AdminUser, start, end *time.Time) (PaymentReportQuery, error) {
	if err := validateActor(actor); err != nil {
		return PaymentReportQuery{}, err
	}

	return PaymentReportQuery{
		actor: actor,
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q PaymentReportQuery) Validate() error {
	return q.guard.Validate(ErrPaymentReportQueryIsNotConstructed)
}

func (q PaymentReportQuery) Actor() *staff.AdminUser { return q.actor }
func (q PaymentReportQuery) Start() *time.Time       { return q.start }
func (q PaymentReportQuery) End() *time.Time         { return q.end }

// PaymentReport totals every recorded payment, failed and pending ones
// included; the status breakdown tells them apart.
type PaymentReport struct {
	Period        ReportPeriod
	TotalPayments kernel.Money
	ByMethod      []PaymentBreakdown
	ByStatus      []PaymentBreakdown
}

type PaymentBreakdown struct {
	Key          string
	PaymentCount int
	Amount       kernel.Money
}
