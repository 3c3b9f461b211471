package http

import (
	"net/http"

	"hotelpos/internal/core/application/usecases/commands"
	"hotelpos/internal/core/application/usecases/queries"
	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/core/domain/model/staff"
	"hotelpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func bindBody(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	return nil
}

func orderItems(items []servers.NewOrderItem) ([]commands.OrderItem, error) {
	result := make([]commands.OrderItem, len(items))
	for i, item := range items {
		menuItemID, err := toKernelID("menu_item_id", item.MenuItemId)
		if err != nil {
			return nil, err
		}
		result[i] = commands.OrderItem{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			Notes:      value(item.Notes),
		}
	}
	return result, nil
}

// respondWithOrder reads the order back through the read model so that
// clients get the same shape from writes as from GET /orders/{orderId}.
func (s *Server) respondWithOrder(ctx echo.Context, actor *staff.AdminUser, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return err
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(code, toOrder(o))
}

// GetCurrentUser handles GET /api/v1/me - returns the signed-in account.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAdminUser(actor))
}

// ListOrders handles GET /api/v1/orders - orders visible to the caller.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var (
		status    *order.Status
		orderType *order.Type
	)
	if params.Status != nil {
		parsed, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return err
		}
		status = &parsed
	}
	if params.Type != nil {
		parsed, err := order.ParseType(string(*params.Type))
		if err != nil {
			return err
		}
		orderType = &parsed
	}

	query, err := queries.NewListOrdersQuery(actor, status, orderType)
	if err != nil {
		return err
	}
	query = query.WithSearch(value(params.Search), value(params.RoomNumber), value(params.TableNumber))

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateOrderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	orderType, err := order.ParseType(string(body.Type))
	if err != nil {
		return err
	}
	items, err := orderItems(body.Items)
	if err != nil {
		return err
	}
	var guestID *kernel.UUID
	if body.GuestId != nil {
		id, err := toKernelID("guest_id", *body.GuestId)
		if err != nil {
			return err
		}
		guestID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(actor, orderID, orderType, value(body.LocationNumber), items)
	if err != nil {
		return err
	}
	cmd = cmd.WithCustomer(value(body.CustomerName), guestID).WithNotes(value(body.Notes))

	if err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, actor, orderID, http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	orderID, err := toKernelID("order_id", orderId)
	if err != nil {
		return err
	}
	return s.respondWithOrder(ctx, actor, orderID, http.StatusOK)
}

// AddOrderItems handles POST /api/v1/orders/{orderId}/items - appends lines.
func (s *Server) AddOrderItems(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	orderID, err := toKernelID("order_id", orderId)
	if err != nil {
		return err
	}

	var body servers.AddOrderItemsJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	items, err := orderItems(body.Items)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderItemsCommand(actor, orderID, items)
	if err != nil {
		return err
	}
	if err := s.h.AddOrderItems.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, actor, orderID, http.StatusOK)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status - advances the
// order one step along its workflow.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	orderID, err := toKernelID("order_id", orderId)
	if err != nil {
		return err
	}

	var body servers.UpdateOrderStatusJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, status)
	if err != nil {
		return err
	}
	if err := s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, actor, orderID, http.StatusOK)
}

// ProcessPayment handles POST /api/v1/orders/{orderId}/payments. A completed
// payment covering the total marks the order paid; omitting the status means
// completed.
func (s *Server) ProcessPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	orderID, err := toKernelID("order_id", orderId)
	if err != nil {
		return err
	}

	var body servers.ProcessPaymentJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	method, err := payment.ParseMethod(string(body.Method))
	if err != nil {
		return err
	}
	status := payment.Completed
	if body.Status != nil {
		if status, err = payment.ParseStatus(string(*body.Status)); err != nil {
			return err
		}
	}

	cmd, err := commands.NewProcessPaymentCommand(actor, kernel.NewUUID(), orderID, kernel.Money(body.Amount), method, status)
	if err != nil {
		return err
	}
	cmd = cmd.WithReference(value(body.TransactionReference), value(body.Notes))

	if err := s.h.ProcessPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.PaymentReceipt{
		Id:      cmd.PaymentID().Bytes(),
		OrderId: cmd.OrderID().Bytes(),
		Amount:  cmd.Amount().Int64(),
		Method:  servers.PaymentMethod(cmd.Method().String()),
		Status:  servers.PaymentStatus(cmd.Status().String()),
	})
}

// SettlePayment handles PATCH /api/v1/payments/{paymentId}. It completes or
// fails a pending payment; omitting the status means completed.
func (s *Server) SettlePayment(ctx echo.Context, paymentId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	paymentID, err := toKernelID("payment_id", paymentId)
	if err != nil {
		return err
	}

	var body servers.SettlePaymentJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	outcome := payment.Completed
	if body.Status != nil {
		if outcome, err = payment.ParseStatus(string(*body.Status)); err != nil {
			return err
		}
	}

	cmd, err := commands.NewSettlePaymentCommand(actor, paymentID, outcome)
	if err != nil {
		return err
	}
	cmd = cmd.WithReference(value(body.TransactionReference))

	if err := s.h.SettlePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	query, err := queries.NewGetPaymentQuery(actor, paymentID)
	if err != nil {
		return err
	}
	settled, err := s.h.GetPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.PaymentReceipt{
		Id:      settled.ID.Bytes(),
		OrderId: settled.OrderID.Bytes(),
		Amount:  settled.Amount.Int64(),
		Method:  servers.PaymentMethod(settled.Method.String()),
		Status:  servers.PaymentStatus(settled.Status.String()),
	})
}

// ListPayments handles GET /api/v1/payments.
func (s *Server) ListPayments(ctx echo.Context, params servers.ListPaymentsParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var (
		method *payment.Method
		status *payment.Status
	)
	if params.Method != nil {
		parsed, err := payment.ParseMethod(string(*params.Method))
		if err != nil {
			return err
		}
		method = &parsed
	}
	if params.Status != nil {
		parsed, err := payment.ParseStatus(string(*params.Status))
		if err != nil {
			return err
		}
		status = &parsed
	}

	query, err := queries.NewListPaymentsQuery(actor, method, status)
	if err != nil {
		return err
	}
	if params.OrderId != nil {
		orderID, err := toKernelID("order_id", *params.OrderId)
		if err != nil {
			return err
		}
		if query, err = query.ForOrder(orderID); err != nil {
			return err
		}
	}

	payments, err := s.h.ListPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toPayments(payments))
}
