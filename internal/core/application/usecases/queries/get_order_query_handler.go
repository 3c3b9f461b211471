package queries

import (
	"context"

	"hotelpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler returns *errs.ObjectNotFoundError for an unknown order
// and *errs.UnauthorizedError when actor may not see it.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderColumns+" WHERE o.id = ?", query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	response, err := scanOrder(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	rows.Close()

	actor := query.Actor()
	allowed := actor.CanViewAllOrders() || (actor.CanTakeOrders() && response.CreatedBy.IsEqual(actor.ID()))
	if err = actor.Require(allowed, "access order "+response.ID.String()); err != nil {
		return OrderResponse{}, err
	}

	orders := []OrderResponse{response}
	if err = attachItems(ctx, h.db, orders); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}
