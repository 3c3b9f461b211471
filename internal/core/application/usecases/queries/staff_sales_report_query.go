package queries

import (
	"errors"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/guard"
)

var ErrStaffSalesReportQueryIsNotConstructed = errors.New(
	"StaffSalesReportQuery must be created via NewStaffSalesReportQuery constructor",
)

// StaffSalesReportQuery ranks active staff by the paid revenue of the orders
// they created.
type StaffSalesReportQuery struct {
	actor *staff.AdminUser
	guard guard.ConstructorGuard
}

func NewStaffSalesReportQuery(actor *staff.AdminUser) (StaffSalesReportQuery, error) {
	if err := validateActor(actor); err != nil {
		return StaffSalesReportQuery{}, err
	}

	return StaffSalesReportQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q StaffSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrStaffSalesReportQueryIsNotConstructed)
}

func (q StaffSalesReportQuery) Actor() *staff.AdminUser { return q.actor }

type StaffSalesReport struct {
	Day   time.Time
	Staff []StaffSales
}

// StaffSales counts every order of one user; both revenues count paid
// orders only, TodayRevenue those created on the report day.
type StaffSales struct {
	AdminID      kernel.UUID
	Name         string
	Email        string
	Role         staff.Role
	TotalOrders  int
	TotalRevenue kernel.Money
	TodayRevenue kernel.Money
}
