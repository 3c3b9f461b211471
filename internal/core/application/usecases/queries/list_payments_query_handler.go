package queries

import (
	"context"
	"database/sql"
	"strings"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := actor.Require(actor.CanViewReports(), staff.CapViewReports); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if method := query.Method(); method != nil {
		where = append(where, "p.method = ?")
		args = append(args, method.String())
	}
	if status := query.Status(); status != nil {
		where = append(where, "p.status = ?")
		args = append(args, status.String())
	}
	if orderID := query.OrderID(); orderID != nil {
		where = append(where, "p.order_id = ?")
		args = append(args, orderID.Bytes())
	}

	stmt := paymentColumns
	if len(where) > 0 {
		stmt += " WHERE " + strings.Join(where, " AND ")
	}
	stmt += " ORDER BY p.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentResponse, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}

const paymentColumns = `
		SELECT p.id, p.order_id, p.amount, p.method, p.status,
		       p.transaction_reference, p.notes, p.created_at, p.processed_by,
		       COALESCE(a.name, '')
		FROM payments p
		LEFT JOIN admin_users a ON a.id = p.processed_by`

func scanPayment(rows *sql.Rows) (PaymentResponse, error) {
	var (
		p                        PaymentResponse
		id, orderID, processedBy uuid.UUID
		amount                   int64
		method, status           string
		reference, notes         sql.NullString
	)
	err := rows.Scan(&id, &orderID, &amount, &method, &status,
		&reference, &notes, &p.CreatedAt, &processedBy, &p.ProcessedByName)
	if err != nil {
		return PaymentResponse{}, err
	}

	if p.ID, err = uuidFromDB(id); err != nil {
		return PaymentResponse{}, err
	}
	if p.OrderID, err = uuidFromDB(orderID); err != nil {
		return PaymentResponse{}, err
	}
	if p.ProcessedBy, err = uuidFromDB(processedBy); err != nil {
		return PaymentResponse{}, err
	}
	if p.Method, err = payment.ParseMethod(method); err != nil {
		return PaymentResponse{}, err
	}
	if p.Status, err = payment.ParseStatus(status); err != nil {
		return PaymentResponse{}, err
	}
	p.Amount = kernel.Money(amount)
	p.TransactionReference = reference.String
	p.Notes = notes.String
	return p, nil
}
