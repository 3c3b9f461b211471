package http

import (
	"context"

	"hotelpos/internal/core/application/usecases/commands"
	"hotelpos/internal/core/application/usecases/queries"
	"hotelpos/internal/generated/servers"
)

// CommandHandler is the shape of every command handler in the commands package.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is the shape of every query handler in the queries package.
type QueryHandler[Q any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases the HTTP API dispatches to.
type Handlers struct {
	// Command handlers
	CreateOrder             CommandHandler[commands.CreateOrderCommand]
	AddOrderItems           CommandHandler[commands.AddOrderItemsCommand]
	UpdateOrderStatus       CommandHandler[commands.UpdateOrderStatusCommand]
	ProcessPayment          CommandHandler[commands.ProcessPaymentCommand]
	SettlePayment           CommandHandler[commands.SettlePaymentCommand]
	CreateMenuItem          CommandHandler[commands.CreateMenuItemCommand]
	SetMenuItemAvailability CommandHandler[commands.SetMenuItemAvailabilityCommand]
	SaveGuest               CommandHandler[commands.SaveGuestCommand]
	RemoveGuest             CommandHandler[commands.RemoveGuestCommand]
	CreateAdminUser         CommandHandler[commands.CreateAdminUserCommand]
	DeactivateAdminUser     CommandHandler[commands.DeactivateAdminUserCommand]

	// Query handlers
	ListAvailableMenu QueryHandler[queries.ListAvailableMenuQuery, []queries.MenuItemResponse]
	ListMenuItems     QueryHandler[queries.ListMenuItemsQuery, []queries.MenuItemResponse]
	GetOrder          QueryHandler[queries.GetOrderQuery, queries.OrderResponse]
	ListOrders        QueryHandler[queries.ListOrdersQuery, []queries.OrderResponse]
	ListPayments      QueryHandler[queries.ListPaymentsQuery, []queries.PaymentResponse]
	GetPayment        QueryHandler[queries.GetPaymentQuery, queries.PaymentResponse]
	ListGuests        QueryHandler[queries.ListGuestsQuery, []queries.GuestResponse]
	ListAdminUsers    QueryHandler[queries.ListAdminUsersQuery, []queries.AdminUserResponse]
	SalesReport       QueryHandler[queries.SalesReportQuery, queries.SalesReport]
	PaymentReport     QueryHandler[queries.PaymentReportQuery, queries.PaymentReport]
	StaffSalesReport  QueryHandler[queries.StaffSalesReportQuery, queries.StaffSalesReport]
}

// Server implements servers.ServerInterface. Every handler turns the request
// into a command or query, runs it, and maps the result to the wire types.
// Errors are returned as is and rendered by the handler from NewErrorHandler.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}
