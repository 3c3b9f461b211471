package queries

import (
	"errors"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"
	"hotelpos/internal/pkg/guard"
)

var ErrSalesReportQueryIsNotConstructed = errors.New(
	"SalesReportQuery must be created via NewSalesReportQuery constructor",
)

// SalesReportQuery summarises the orders placed within a period. Nil dates
// fall back to the last DefaultReportDays days. An empty types list keeps
// every order type.
//
// Example:
//
//	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
//	query, _ := NewSalesReportQuery(manager, &from, nil, []order.Type{order.Bar})
//	report, err := handler.Handle(ctx, query)
type SalesReportQuery struct {
	actor *staff.AdminUser
	start *time.Time
	end   *time.Time
	types []order.Type
	guard guard.ConstructorGuard
}

func NewSalesReportQuery(actor *staff.AdminUser, start, end *time.Time, types []order.Type) (SalesReportQuery, error) {
	var typeErrs []error
	for _, t := range types {
		if err := t.Validate(); err != nil {
			typeErrs = append(typeErrs, errs.NewValueIsInvalidErrorWithCause("type", err))
		}
	}
	if err := errors.Join(validateActor(actor), errors.Join(typeErrs...)); err != nil {
		return SalesReportQuery{}, err
	}

	return SalesReportQuery{
		actor: actor,
		start: start,
		end:   end,
		types: append([]order.Type(nil), types...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q SalesReportQuery) Validate() error {
	return q.guard.Validate(ErrSalesReportQueryIsNotConstructed)
}

func (q SalesReportQuery) Actor() *staff.AdminUser { return q.actor }
func (q SalesReportQuery) Start() *time.Time       { return q.start }
func (q SalesReportQuery) End() *time.Time         { return q.end }
func (q SalesReportQuery) Types() []order.Type     { return q.types }

// SalesReport counts every order in the period whatever its status;
// the status breakdown separates paid revenue from the rest.
type SalesReport struct {
	Period            ReportPeriod
	TotalRevenue      kernel.Money
	TotalOrders       int
	AverageOrderValue kernel.Money
	ByType            []SalesBreakdown
	ByStatus          []SalesBreakdown
	TopItems          []TopSellingItem
}

// SalesBreakdown groups orders by Key, an order type or an order status.
type SalesBreakdown struct {
	Key        string
	OrderCount int
	Revenue    kernel.Money
}

// TopSellingItem aggregates lines by item name. Revenue is the sum of
// unit price times quantity.
type TopSellingItem struct {
	Name     string
	Quantity int
	Revenue  kernel.Money
}
