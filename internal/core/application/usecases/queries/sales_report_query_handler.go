package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/staff"

	"github.com/lib/pq"
)

const topSellingItemsLimit = 10

// SalesReportQueryHandler aggregates directly in PostgreSQL over the
// denormalized order totals.
type SalesReportQueryHandler struct {
	db       *sql.DB
	location *time.Location
	now      func() time.Time
}

func NewSalesReportQueryHandler(db *sql.DB, location *time.Location) SalesReportQueryHandler {
	if location == nil {
		location = time.UTC
	}
	return SalesReportQueryHandler{db: db, location: location, now: time.Now}
}

func (h SalesReportQueryHandler) Handle(ctx context.Context, query SalesReportQuery) (SalesReport, error) {
	if err := query.Validate(); err != nil {
		return SalesReport{}, err
	}

	actor := query.Actor()
	if err := actor.Require(actor.CanViewReports(), staff.CapViewReports); err != nil {
		return SalesReport{}, err
	}

	period, err := resolvePeriod(query.Start(), query.End(), h.now(), h.location)
	if err != nil {
		return SalesReport{}, err
	}

	from, to := period.bounds()
	where, args := orderWindow("o", from, to, query.Types())

	report := SalesReport{Period: period}

	var revenue int64
	err = h.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(o.total), 0) FROM orders o WHERE "+where, args...,
	).Scan(&report.TotalOrders, &revenue)
	if err != nil {
		return SalesReport{}, fmt.Errorf("sales totals: %w", err)
	}
	report.TotalRevenue = kernel.Money(revenue)
	report.AverageOrderValue = averageOf(revenue, report.TotalOrders)

	if report.ByType, err = h.breakdown(ctx, "o.type", where, args); err != nil {
		return SalesReport{}, err
	}
	if report.ByStatus, err = h.breakdown(ctx, "o.status", where, args); err != nil {
		return SalesReport{}, err
	}
	if report.TopItems, err = h.topItems(ctx, where, args); err != nil {
		return SalesReport{}, err
	}

	return report, nil
}

func (h SalesReportQueryHandler) breakdown(ctx context.Context, column string, where string, args []any) ([]SalesBreakdown, error) {
	stmt := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*), COALESCE(SUM(o.total), 0)
		FROM orders o
		WHERE %[2]s
		GROUP BY %[1]s
		ORDER BY %[1]s`, column, where)

	rows, err := h.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("sales by %s: %w", column, err)
	}
	defer rows.Close()

	result := make([]SalesBreakdown, 0)
	for rows.Next() {
		var (
			b       SalesBreakdown
			revenue int64
		)
		if err = rows.Scan(&b.Key, &b.OrderCount, &revenue); err != nil {
			return nil, err
		}
		b.Revenue = kernel.Money(revenue)
		result = append(result, b)
	}
	return result, rows.Err()
}

func (h SalesReportQueryHandler) topItems(ctx context.Context, where string, args []any) ([]TopSellingItem, error) {
	stmt := fmt.Sprintf(`
		SELECT i.name, SUM(i.quantity) AS quantity, SUM(i.unit_price * i.quantity)
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE %s
		GROUP BY i.name
		ORDER BY quantity DESC, i.name
		LIMIT %d`, where, topSellingItemsLimit)

	rows, err := h.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("top selling items: %w", err)
	}
	defer rows.Close()

	items := make([]TopSellingItem, 0, topSellingItemsLimit)
	for rows.Next() {
		var (
			item    TopSellingItem
			revenue int64
		)
		if err = rows.Scan(&item.Name, &item.Quantity, &revenue); err != nil {
			return nil, err
		}
		item.Revenue = kernel.Money(revenue)
		items = append(items, item)
	}
	return items, rows.Err()
}

// orderWindow builds the WHERE clause selecting the orders of alias created
// in [from, to), optionally restricted to types.
func orderWindow(alias string, from, to time.Time, types []order.Type) (string, []any) {
	clauses := []string{
		fmt.Sprintf("%s.created_at >= $1", alias),
		fmt.Sprintf("%s.created_at < $2", alias),
	}
	args := []any{from, to}

	if len(types) > 0 {
		names := make([]string, 0, len(types))
		for _, t := range types {
			names = append(names, t.String())
		}
		args = append(args, pq.Array(names))
		clauses = append(clauses, fmt.Sprintf("%s.type = ANY($%d)", alias, len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

// averageOf divides in minor units, rounding half up.
func averageOf(total int64, count int) kernel.Money {
	if count == 0 {
		return 0
	}
	n := int64(count)
	return kernel.Money((total + n/2) / n)
}
