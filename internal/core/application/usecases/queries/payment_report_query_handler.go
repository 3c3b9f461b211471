package queries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/staff"
)

type PaymentReportQueryHandler struct {
	db       *sql.DB
	location *time.Location
	now      func() time.Time
}

func NewPaymentReportQueryHandler(db *sql.DB, location *time.Location) PaymentReportQueryHandler {
	if location == nil {
		location = time.UTC
	}
	return PaymentReportQueryHandler{db: db, location: location, now: time.Now}
}

func (h PaymentReportQueryHandler) Handle(ctx context.Context, query PaymentReportQuery) (PaymentReport, error) {
	if err := query.Validate(); err != nil {
		return PaymentReport{}, err
	}

	actor := query.Actor()
	if err := actor.Require(actor.CanViewReports(), staff.CapViewReports); err != nil {
		return PaymentReport{}, err
	}

	period, err := resolvePeriod(query.Start(), query.End(), h.now(), h.location)
	if err != nil {
		return PaymentReport{}, err
	}
	from, to := period.bounds()

	report := PaymentReport{Period: period}

	var total int64
	err = h.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE created_at >= $1 AND created_at < $2",
		from, to,
	).Scan(&total)
	if err != nil {
		return PaymentReport{}, fmt.Errorf("payment totals: %w", err)
	}
	report.TotalPayments = kernel.Money(total)

	if report.ByMethod, err = h.breakdown(ctx, "method", from, to); err != nil {
		return PaymentReport{}, err
	}
	if report.ByStatus, err = h.breakdown(ctx, "status", from, to); err != nil {
		return PaymentReport{}, err
	}

	return report, nil
}

func (h PaymentReportQueryHandler) breakdown(ctx context.Context, column string, from, to time.Time) ([]PaymentBreakdown, error) {
	stmt := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*), COALESCE(SUM(amount), 0)
		FROM payments
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY %[1]s
		ORDER BY %[1]s`, column)

	rows, err := h.db.QueryContext(ctx, stmt, from, to)
	if err != nil {
		return nil, fmt.Errorf("payments by %s: %w", column, err)
	}
	defer rows.Close()

	result := make([]PaymentBreakdown, 0)
	for rows.Next() {
		var (
			b      PaymentBreakdown
			amount int64
		)
		if err = rows.Scan(&b.Key, &b.PaymentCount, &amount); err != nil {
			return nil, err
		}
		b.Amount = kernel.Money(amount)
		result = append(result, b)
	}
	return result, rows.Err()
}
