package queries

import (
	"context"

	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPaymentQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	actor := query.Actor()
	if err := actor.Require(actor.CanProcessPayments(), staff.CapProcessPayments); err != nil {
		return PaymentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(paymentColumns+" WHERE p.id = ?", query.PaymentID().Bytes()).Rows()
	if err != nil {
		return PaymentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PaymentResponse{}, err
		}
		return PaymentResponse{}, errs.NewObjectNotFoundError("payment", query.PaymentID())
	}
	return scanPayment(rows)
}
