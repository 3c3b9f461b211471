package queries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

type StaffSalesReportQueryHandler struct {
	db       *sql.DB
	location *time.Location
	now      func() time.Time
}

func NewStaffSalesReportQueryHandler(db *sql.DB, location *time.Location) StaffSalesReportQueryHandler {
	if location == nil {
		location = time.UTC
	}
	return StaffSalesReportQueryHandler{db: db, location: location, now: time.Now}
}

func (h StaffSalesReportQueryHandler) Handle(ctx context.Context, query StaffSalesReportQuery) (StaffSalesReport, error) {
	if err := query.Validate(); err != nil {
		return StaffSalesReport{}, err
	}

	actor := query.Actor()
	if err := actor.Require(actor.CanViewReports(), staff.CapViewReports); err != nil {
		return StaffSalesReport{}, err
	}

	return h.Compute(ctx)
}

// Compute builds the report for the current day without an authorization
// check. Scheduled jobs use it.
func (h StaffSalesReportQueryHandler) Compute(ctx context.Context) (StaffSalesReport, error) {
	day := midnight(h.now().In(h.location), h.location)

	rows, err := h.db.QueryContext(ctx, `
		SELECT a.id, a.name, a.email, a.role,
		       COUNT(o.id),
		       COALESCE(SUM(o.total) FILTER (WHERE o.status = $1), 0) AS total_revenue,
		       COALESCE(SUM(o.total) FILTER (WHERE o.status = $1 AND o.created_at >= $2 AND o.created_at < $3), 0)
		FROM admin_users a
		LEFT JOIN orders o ON o.created_by = a.id
		WHERE a.is_active
		GROUP BY a.id, a.name, a.email, a.role
		ORDER BY total_revenue DESC, a.name`,
		order.Paid.String(), day, day.AddDate(0, 0, 1),
	)
	if err != nil {
		return StaffSalesReport{}, fmt.Errorf("staff sales: %w", err)
	}
	defer rows.Close()

	report := StaffSalesReport{Day: day, Staff: make([]StaffSales, 0)}
	for rows.Next() {
		var (
			s            StaffSales
			id           uuid.UUID
			role         string
			total, today int64
		)
		if err = rows.Scan(&id, &s.Name, &s.Email, &role, &s.TotalOrders, &total, &today); err != nil {
			return StaffSalesReport{}, err
		}

		if s.AdminID, err = uuidFromDB(id); err != nil {
			return StaffSalesReport{}, err
		}
		if s.Role, err = staff.ParseRole(role); err != nil {
			return StaffSalesReport{}, err
		}
		s.TotalRevenue = kernel.Money(total)
		s.TodayRevenue = kernel.Money(today)

		report.Staff = append(report.Staff, s)
	}

	if err = rows.Err(); err != nil {
		return StaffSalesReport{}, err
	}
	return report, nil
}
