package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/me)
	GetCurrentUser(ctx echo.Context) error

	// (GET /api/v1/menu)
	GetMenu(ctx echo.Context, params GetMenuParams) error

	// (GET /api/v1/menu/items)
	ListMenuItems(ctx echo.Context, params ListMenuItemsParams) error

	// (POST /api/v1/menu/items)
	CreateMenuItem(ctx echo.Context) error

	// (PUT /api/v1/menu/items/{itemId}/availability)
	SetMenuItemAvailability(ctx echo.Context, itemId openapi_types.UUID) error

	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error

	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error

	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// (POST /api/v1/orders/{orderId}/items)
	AddOrderItems(ctx echo.Context, orderId openapi_types.UUID) error

	// (PUT /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error

	// (POST /api/v1/orders/{orderId}/payments)
	ProcessPayment(ctx echo.Context, orderId openapi_types.UUID) error

	// (GET /api/v1/payments)
	ListPayments(ctx echo.Context, params ListPaymentsParams) error

	// (PATCH /api/v1/payments/{paymentId})
	SettlePayment(ctx echo.Context, paymentId openapi_types.UUID) error

	// (GET /api/v1/guests)
	ListGuests(ctx echo.Context, params ListGuestsParams) error

	// (POST /api/v1/guests)
	RegisterGuest(ctx echo.Context) error

	// (PUT /api/v1/guests/{guestId})
	UpdateGuest(ctx echo.Context, guestId openapi_types.UUID) error

	// (DELETE /api/v1/guests/{guestId})
	RemoveGuest(ctx echo.Context, guestId openapi_types.UUID) error

	// (GET /api/v1/admin-users)
	ListAdminUsers(ctx echo.Context) error

	// (POST /api/v1/admin-users)
	CreateAdminUser(ctx echo.Context) error

	// (POST /api/v1/admin-users/{userId}/deactivate)
	DeactivateAdminUser(ctx echo.Context, userId openapi_types.UUID) error

	// (GET /api/v1/reports/sales)
	GetSalesReport(ctx echo.Context, params GetSalesReportParams) error

	// (GET /api/v1/reports/payments)
	GetPaymentReport(ctx echo.Context, params GetPaymentReportParams) error

	// (GET /api/v1/reports/staff-sales)
	GetStaffSalesReport(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetCurrentUser converts echo context to params.
func (w *ServerInterfaceWrapper) GetCurrentUser(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCurrentUser(ctx)
	return err
}

// GetMenu converts echo context to params.
func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetMenuParams
	// ------------- Optional query parameter "category" -------------

	err = runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMenu(ctx, params)
	return err
}

// ListMenuItems converts echo context to params.
func (w *ServerInterfaceWrapper) ListMenuItems(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListMenuItemsParams
	// ------------- Optional query parameter "category" -------------

	err = runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	// ------------- Optional query parameter "available" -------------

	err = runtime.BindQueryParameter("form", true, false, "available", ctx.QueryParams(), &params.Available)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter available: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListMenuItems(ctx, params)
	return err
}

// CreateMenuItem converts echo context to params.
func (w *ServerInterfaceWrapper) CreateMenuItem(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateMenuItem(ctx)
	return err
}

// SetMenuItemAvailability converts echo context to params.
func (w *ServerInterfaceWrapper) SetMenuItemAvailability(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "itemId" -------------
	var itemId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetMenuItemAvailability(ctx, itemId)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "type" -------------

	err = runtime.BindQueryParameter("form", true, false, "type", ctx.QueryParams(), &params.Type)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter type: %s", err))
	}

	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "room_number" -------------

	err = runtime.BindQueryParameter("form", true, false, "room_number", ctx.QueryParams(), &params.RoomNumber)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter room_number: %s", err))
	}

	// ------------- Optional query parameter "table_number" -------------

	err = runtime.BindQueryParameter("form", true, false, "table_number", ctx.QueryParams(), &params.TableNumber)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter table_number: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// AddOrderItems converts echo context to params.
func (w *ServerInterfaceWrapper) AddOrderItems(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddOrderItems(ctx, orderId)
	return err
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrderStatus(ctx, orderId)
	return err
}

// ProcessPayment converts echo context to params.
func (w *ServerInterfaceWrapper) ProcessPayment(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ProcessPayment(ctx, orderId)
	return err
}

// ListPayments converts echo context to params.
func (w *ServerInterfaceWrapper) ListPayments(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListPaymentsParams
	// ------------- Optional query parameter "method" -------------

	err = runtime.BindQueryParameter("form", true, false, "method", ctx.QueryParams(), &params.Method)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter method: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "order_id" -------------

	err = runtime.BindQueryParameter("form", true, false, "order_id", ctx.QueryParams(), &params.OrderId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order_id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListPayments(ctx, params)
	return err
}

// SettlePayment converts echo context to params.
func (w *ServerInterfaceWrapper) SettlePayment(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "paymentId" -------------
	var paymentId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "paymentId", ctx.Param("paymentId"), &paymentId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter paymentId: %s", err))
	}

	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SettlePayment(ctx, paymentId)
	return err
}

// ListGuests converts echo context to params.
func (w *ServerInterfaceWrapper) ListGuests(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListGuestsParams
	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListGuests(ctx, params)
	return err
}

// RegisterGuest converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterGuest(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterGuest(ctx)
	return err
}

// UpdateGuest converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateGuest(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "guestId" -------------
	var guestId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "guestId", ctx.Param("guestId"), &guestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter guestId: %s", err))
	}

	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateGuest(ctx, guestId)
	return err
}

// RemoveGuest converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveGuest(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "guestId" -------------
	var guestId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "guestId", ctx.Param("guestId"), &guestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter guestId: %s", err))
	}

	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveGuest(ctx, guestId)
	return err
}

// ListAdminUsers converts echo context to params.
func (w *ServerInterfaceWrapper) ListAdminUsers(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAdminUsers(ctx)
	return err
}

// CreateAdminUser converts echo context to params.
func (w *ServerInterfaceWrapper) CreateAdminUser(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateAdminUser(ctx)
	return err
}

// DeactivateAdminUser converts echo context to params.
func (w *ServerInterfaceWrapper) DeactivateAdminUser(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "userId" -------------
	var userId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeactivateAdminUser(ctx, userId)
	return err
}

// GetSalesReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetSalesReport(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetSalesReportParams
	// ------------- Optional query parameter "start_date" -------------

	err = runtime.BindQueryParameter("form", true, false, "start_date", ctx.QueryParams(), &params.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter start_date: %s", err))
	}

	// ------------- Optional query parameter "end_date" -------------

	err = runtime.BindQueryParameter("form", true, false, "end_date", ctx.QueryParams(), &params.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter end_date: %s", err))
	}

	// ------------- Optional query parameter "type" -------------

	err = runtime.BindQueryParameter("form", true, false, "type", ctx.QueryParams(), &params.Type)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter type: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSalesReport(ctx, params)
	return err
}

// GetPaymentReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetPaymentReport(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetPaymentReportParams
	// ------------- Optional query parameter "start_date" -------------

	err = runtime.BindQueryParameter("form", true, false, "start_date", ctx.QueryParams(), &params.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter start_date: %s", err))
	}

	// ------------- Optional query parameter "end_date" -------------

	err = runtime.BindQueryParameter("form", true, false, "end_date", ctx.QueryParams(), &params.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter end_date: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetPaymentReport(ctx, params)
	return err
}

// GetStaffSalesReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetStaffSalesReport(ctx echo.Context) error {
	var err error
	ctx.Set(AdminUserScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetStaffSalesReport(ctx)
	return err
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/me", wrapper.GetCurrentUser)
	router.GET(baseURL+"/api/v1/menu", wrapper.GetMenu)
	router.GET(baseURL+"/api/v1/menu/items", wrapper.ListMenuItems)
	router.POST(baseURL+"/api/v1/menu/items", wrapper.CreateMenuItem)
	router.PUT(baseURL+"/api/v1/menu/items/:itemId/availability", wrapper.SetMenuItemAvailability)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/items", wrapper.AddOrderItems)
	router.PUT(baseURL+"/api/v1/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:orderId/payments", wrapper.ProcessPayment)
	router.GET(baseURL+"/api/v1/payments", wrapper.ListPayments)
	router.PATCH(baseURL+"/api/v1/payments/:paymentId", wrapper.SettlePayment)
	router.GET(baseURL+"/api/v1/guests", wrapper.ListGuests)
	router.POST(baseURL+"/api/v1/guests", wrapper.RegisterGuest)
	router.PUT(baseURL+"/api/v1/guests/:guestId", wrapper.UpdateGuest)
	router.DELETE(baseURL+"/api/v1/guests/:guestId", wrapper.RemoveGuest)
	router.GET(baseURL+"/api/v1/admin-users", wrapper.ListAdminUsers)
	router.POST(baseURL+"/api/v1/admin-users", wrapper.CreateAdminUser)
	router.POST(baseURL+"/api/v1/admin-users/:userId/deactivate", wrapper.DeactivateAdminUser)
	router.GET(baseURL+"/api/v1/reports/sales", wrapper.GetSalesReport)
	router.GET(baseURL+"/api/v1/reports/payments", wrapper.GetPaymentReport)
	router.GET(baseURL+"/api/v1/reports/staff-sales", wrapper.GetStaffSalesReport)
}
